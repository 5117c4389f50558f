package billiards

import (
	"fmt"
	"math"
)

// Limits of the order accepted by [FitPolygon].
const (
	MinOrder = 3
	MaxOrder = 20
)

// DefaultScale is the default curvature parameter of [FitPolygon].
const DefaultScale = 0.75

// BezierCurve is a composite curve made of Bézier segments, where each
// segment starts where the previous one ends. A closed curve's last segment
// ends at the first segment's start.
type BezierCurve []BezierSegment

// FitPolygon fits a composite Bézier curve through the vertices of poly, with
// one segment per edge. Every edge is turned into a cubic segment whose inner
// control points are derived from the midpoints of the adjacent edges,
// weighted by the ratio of their lengths. scale, which should be in [0, 1],
// tunes the curvature: with a scale of 0 the inner control points coincide
// with the vertices and the curve follows the edges exactly.
//
// If closed is false, the first segment's first inner control point and the
// last segment's second inner control point are pinned to their vertices.
//
// For orders above 3, every segment is degree-elevated to the requested
// order, which doesn't change the shape of the curve. order is clamped to
// [MinOrder, MaxOrder].
//
// FitPolygon returns nil for polygons with fewer than three vertices.
func FitPolygon(poly Polygon, order int, scale float64, closed bool) BezierCurve {
	if poly.IsDegenerate() {
		return nil
	}
	order = max(MinOrder, min(MaxOrder, order))
	n := len(poly)
	out := make(BezierCurve, n)
	for i := range n {
		prev := max(0, i-1)
		if i == 0 && closed {
			prev = n - 1
		}
		p0 := poly[prev]
		p1 := poly[i]
		p2 := poly[(i+1)%n]
		p3 := poly[(i+2)%n]

		len1 := p0.Distance(p1)
		len2 := p1.Distance(p2)
		len3 := p2.Distance(p3)

		// Edge midpoints.
		c1 := p0.Midpoint(p1)
		c2 := p1.Midpoint(p2)
		c3 := p2.Midpoint(p3)

		m1 := c1.Lerp(c2, ratio(len1, len2))
		m2 := c2.Lerp(c3, ratio(len2, len3))

		ctrl1 := p1.Translate(c2.Sub(m1).Mul(scale))
		ctrl2 := p2.Translate(c2.Sub(m2).Mul(scale))
		if !closed {
			if i == 0 {
				ctrl1 = p1
			}
			if i == n-1 {
				ctrl2 = p2
			}
		}
		out[i] = BezierSegment{p1, ctrl1, ctrl2, p2}.ElevateTo(order)
	}
	return out
}

// ratio returns a / (a + b), or 0.5 if both are zero.
func ratio(a, b float64) float64 {
	if a+b == 0 {
		return 0.5
	}
	return a / (a + b)
}

// Validate checks that the curve has at least three segments, that every
// segment has an order of at least one, and that consecutive segments share
// their endpoints.
func (c BezierCurve) Validate(closed bool) error {
	if len(c) < 3 {
		return fmt.Errorf("%w: %d segments", ErrDegenerateBoundary, len(c))
	}
	for i, seg := range c {
		if len(seg) < 2 {
			return fmt.Errorf("%w: segment %d has %d control points", ErrDegenerateBoundary, i, len(seg))
		}
		if i == len(c)-1 && !closed {
			break
		}
		next := c[(i+1)%len(c)]
		if len(next) > 0 && !seg.End().ApproxEqual(next.Start()) {
			return fmt.Errorf("%w: segment %d ends at %v but segment %d starts at %v",
				ErrDegenerateBoundary, i, seg.End(), (i+1)%len(c), next.Start())
		}
	}
	return nil
}

// Eval evaluates segment i at t.
func (c BezierCurve) Eval(i int, t float64) Point {
	return c[i].Eval(t)
}

// Intersections returns the intersections of every segment with the infinite
// line.
func (c BezierCurve) Intersections(line Line) []CurveIntersection {
	var out []CurveIntersection
	for i, seg := range c {
		for _, li := range seg.IntersectLine(line) {
			out = append(out, CurveIntersection{
				Point:            seg.Eval(li.SegmentT),
				Index:            i,
				LineIntersection: li,
			})
		}
	}
	return out
}

// CurveIntersection is an intersection of a line with segment Index of a
// [BezierCurve].
type CurveIntersection struct {
	Point Point
	Index int
	LineIntersection
}

// Contains reports whether pt lies inside the closed curve, using the
// even-odd rule on a ray cast to the right of pt. Intersections at the end of
// a segment are attributed to the following segment only.
func (c BezierCurve) Contains(pt Point) bool {
	if len(c) < 3 {
		return false
	}
	ray := Line{pt, Pt(pt.X+1, pt.Y)}
	count := 0
	for _, seg := range c {
		for _, li := range seg.IntersectLine(ray) {
			if li.SegmentT >= 1 {
				continue
			}
			if seg.Eval(li.SegmentT).X > pt.X {
				count++
			}
		}
	}
	return count%2 != 0
}

// SegmentInside reports whether the segment from a to b lies inside the
// closed curve. It tests two points slightly inward from a and b, which is
// robust when a and b themselves lie on the curve.
func (c BezierCurve) SegmentInside(a, b Point) bool {
	const lambda = 0.01
	return c.Contains(a.Lerp(b, lambda)) && c.Contains(a.Lerp(b, 1-lambda))
}

// Nearest returns the point on the curve closest to pt and its distance to
// pt. Curves with fewer than three segments return an Index of -1 and an
// infinite distance.
//
// For each segment, the roots of (B(t) − pt) · B′(t) are the critical points
// of the distance. Every root in [0, 1), as well as t = 0, is scored by its
// true distance, as roots may be maxima as well as minima.
func (c BezierCurve) Nearest(pt Point) (CurvePoint, float64) {
	best := CurvePoint{Index: -1}
	minDist := math.Inf(1)
	if len(c) < 3 {
		return best, minDist
	}
	for i, seg := range c {
		if len(seg) < 2 {
			continue
		}
		xs, ys := seg.Monomial()
		xs[0] -= pt.X
		ys[0] -= pt.Y
		dot := PolyMul(xs, PolyDeriv(xs))
		dy := PolyMul(ys, PolyDeriv(ys))
		for k := range dy {
			dot[k] += dy[k]
		}
		candidates := append(RealRoots(dot), 0)
		for _, t := range candidates {
			if t < 0 || t >= 1 {
				continue
			}
			near := seg.Eval(t)
			if d := near.DistanceSquared(pt); d < minDist {
				minDist = d
				best = CurvePoint{Point: near, T: t, Index: i}
			}
		}
	}
	return best, math.Sqrt(minDist)
}

// Arclen approximates the length of the curve with Simpson's rule on every
// segment.
func (c BezierCurve) Arclen() float64 {
	var l float64
	for _, seg := range c {
		l += seg.Arclen()
	}
	return l
}

// ArclenNewtonCotes approximates the length of the curve with [NewtonCotes]
// of the given order over the given number of subintervals per segment.
func (c BezierCurve) ArclenNewtonCotes(order, intervals int) float64 {
	var l float64
	for _, seg := range c {
		l += seg.ArclenNewtonCotes(order, intervals)
	}
	return l
}

// BoundingBox returns a box containing the whole curve, rounded outwards and
// widened the same way as [Polygon.BoundingBox].
func (c BezierCurve) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	r := c[0].BoundingBox()
	for _, seg := range c[1:] {
		r = r.Union(seg.BoundingBox())
	}
	return r.Padded()
}

// Transform applies aff to every segment.
func (c BezierCurve) Transform(aff Affine) BezierCurve {
	out := make(BezierCurve, len(c))
	for i, seg := range c {
		out[i] = seg.Transform(aff)
	}
	return out
}
