package billiards

import "slices"

// BezierSegment is a Bézier curve of arbitrary order, given by its control
// points. The order of the segment is one less than the number of control
// points.
type BezierSegment []Point

// Order returns the degree of the segment.
func (seg BezierSegment) Order() int {
	return len(seg) - 1
}

// Start returns the first control point.
func (seg BezierSegment) Start() Point {
	return seg[0]
}

// End returns the last control point.
func (seg BezierSegment) End() Point {
	return seg[len(seg)-1]
}

// Eval evaluates the segment at t using de Casteljau's algorithm.
func (seg BezierSegment) Eval(t float64) Point {
	switch len(seg) {
	case 0:
		return Point{}
	case 1:
		return seg[0]
	}
	var buf [21]Point
	pts := append(buf[:0], seg...)
	for n := len(pts) - 1; n > 0; n-- {
		for i := range n {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}

// Deriv returns the hodograph of the segment, the Bézier curve of one lower
// order that evaluates to the derivative. Its control points are vectors,
// stored as points.
func (seg BezierSegment) Deriv() BezierSegment {
	n := len(seg) - 1
	if n < 1 {
		return BezierSegment{{}}
	}
	out := make(BezierSegment, n)
	for i := range n {
		out[i] = Point(seg[i+1].Sub(seg[i]).Mul(float64(n)))
	}
	return out
}

// Derivative returns the derivative of the segment at t.
func (seg BezierSegment) Derivative(t float64) Vec2 {
	return Vec2(seg.Deriv().Eval(t))
}

// Tangent returns a vector pointing along the segment at t. Where the
// derivative vanishes, which happens at the ends of segments whose first or
// last control points coincide, the direction towards the nearest distinct
// control point is used instead.
func (seg BezierSegment) Tangent(t float64) Vec2 {
	d := seg.Derivative(t)
	if !approxZero(d.Hypot()) {
		return d
	}
	if t <= 0.5 {
		for _, pt := range seg[1:] {
			if !pt.ApproxEqual(seg[0]) {
				return pt.Sub(seg[0])
			}
		}
	} else {
		end := seg.End()
		for i := len(seg) - 2; i >= 0; i-- {
			if !seg[i].ApproxEqual(end) {
				return end.Sub(seg[i])
			}
		}
	}
	return d
}

// Monomial converts the segment from the Bernstein basis to the monomial
// basis and returns the polynomial coefficients of x(t) and y(t), in
// ascending order of power.
func (seg BezierSegment) Monomial() (xs, ys []float64) {
	n := len(seg) - 1
	if n < 0 {
		return nil, nil
	}
	xs = make([]float64, n+1)
	ys = make([]float64, n+1)
	for j := 0; j <= n; j++ {
		var x, y float64
		for i := 0; i <= j; i++ {
			c := binomial(j, i)
			if (j-i)%2 != 0 {
				c = -c
			}
			x += c * seg[i].X
			y += c * seg[i].Y
		}
		b := binomial(n, j)
		xs[j] = b * x
		ys[j] = b * y
	}
	return xs, ys
}

// Elevate returns the segment raised by one order. The elevated segment
// describes the same curve.
func (seg BezierSegment) Elevate() BezierSegment {
	n := len(seg)
	if n == 0 {
		return nil
	}
	out := make(BezierSegment, n+1)
	out[0] = seg[0]
	out[n] = seg[n-1]
	for j := 1; j < n; j++ {
		w := float64(j) / float64(n)
		out[j] = seg[j].Lerp(seg[j-1], w)
	}
	return out
}

// ElevateTo raises the segment to the given order. Segments that already have
// at least that order are returned unchanged.
func (seg BezierSegment) ElevateTo(order int) BezierSegment {
	for seg.Order() < order {
		seg = seg.Elevate()
	}
	return seg
}

// IntersectLine computes the intersections of the segment with the infinite
// line through line.P0 and line.P1. LineT is the position of the intersection
// on the line, SegmentT the position on the segment, which is always in
// [0, 1], with values within tolerance of either end snapped to it. The
// intersections are sorted by SegmentT.
//
// The line is substituted into the segment's monomial form, which yields a
// polynomial in t of the segment's order whose real roots in [0, 1] are the
// intersections.
func (seg BezierSegment) IntersectLine(line Line) []LineIntersection {
	if len(seg) < 2 || line.IsDegenerate() {
		return nil
	}
	a, b, c := line.Implicit()
	xs, ys := seg.Monomial()
	coeffs := make([]float64, len(xs))
	for i := range xs {
		coeffs[i] = a*xs[i] + b*ys[i]
	}
	coeffs[0] += c

	d := line.Direction()
	invlen2 := 1 / d.Hypot2()
	var out []LineIntersection
	for _, t := range RealRoots(coeffs) {
		if !inUnitInterval(t) {
			continue
		}
		// Snap to the ends so that junctions between segments are recognized.
		switch {
		case approxZero(t):
			t = 0
		case ApproxEqual(t, 1):
			t = 1
		}
		pt := seg.Eval(t)
		u := pt.Sub(line.P0).Dot(d) * invlen2
		out = append(out, LineIntersection{LineT: u, SegmentT: t})
	}
	slices.SortFunc(out, func(a, b LineIntersection) int {
		switch {
		case a.SegmentT < b.SegmentT:
			return -1
		case a.SegmentT > b.SegmentT:
			return 1
		default:
			return 0
		}
	})
	// Double roots of tangential intersections may be reported twice.
	return slices.CompactFunc(out, func(a, b LineIntersection) bool {
		return ApproxEqual(a.SegmentT, b.SegmentT)
	})
}

// Arclen approximates the arc length of the segment with Simpson's rule over
// the whole parameter range.
func (seg BezierSegment) Arclen() float64 {
	if len(seg) < 2 {
		return 0
	}
	deriv := seg.Deriv()
	return Simpson(0, 1, func(t float64) float64 {
		return Vec2(deriv.Eval(t)).Hypot()
	})
}

// ArclenNewtonCotes approximates the arc length of the segment with
// [NewtonCotes] of the given order over the given number of subintervals.
func (seg BezierSegment) ArclenNewtonCotes(order, intervals int) float64 {
	if len(seg) < 2 {
		return 0
	}
	deriv := seg.Deriv()
	return NewtonCotes(0, 1, order, intervals, func(t float64) float64 {
		return Vec2(deriv.Eval(t)).Hypot()
	})
}

// BoundingBox returns the bounding box of the control polygon, which contains
// the segment.
func (seg BezierSegment) BoundingBox() Rect {
	return BoundingRect(seg...)
}

// Transform applies aff to every control point.
func (seg BezierSegment) Transform(aff Affine) BezierSegment {
	out := make(BezierSegment, len(seg))
	for i, pt := range seg {
		out[i] = pt.Transform(aff)
	}
	return out
}

// LineIntersection is an intersection of a [Line] and a [BezierSegment].
type LineIntersection struct {
	// The position of the intersection on the line.
	LineT float64
	// The position of the intersection on the segment, in [0, 1].
	SegmentT float64
}

// binomial returns n choose k.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}
