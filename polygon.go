package billiards

import "math"

// Location classifies a point relative to a closed boundary.
type Location int

const (
	Outside  Location = -1
	OnBorder Location = 0
	Inside   Location = 1
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case OnBorder:
		return "on border"
	case Inside:
		return "inside"
	default:
		return "Location(invalid)"
	}
}

// Polygon is a closed polygon. Edge i joins vertex i and vertex (i+1) mod n.
// The orientation of the vertices isn't significant. Polygons with fewer than
// three vertices are degenerate; queries on them return sentinel values.
type Polygon []Point

// IsDegenerate reports whether the polygon has fewer than three vertices.
func (poly Polygon) IsDegenerate() bool {
	return len(poly) < 3
}

// Edge returns the i-th edge. i is taken modulo the number of vertices.
func (poly Polygon) Edge(i int) Line {
	n := len(poly)
	i = ((i % n) + n) % n
	return Line{poly[i], poly[(i+1)%n]}
}

// BoundingBox returns a box enclosing every vertex, with its coordinates
// rounded outwards to integers and then widened by one unit on every side, so
// that it never excludes a point on the border.
func (poly Polygon) BoundingBox() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	return BoundingRect(poly...).Padded()
}

// Perimeter returns the sum of the edge lengths.
func (poly Polygon) Perimeter() float64 {
	var u float64
	for i := range poly {
		u += poly.Edge(i).Length()
	}
	return u
}

// Classify determines whether pt lies inside the polygon, outside of it or on
// its border. It walks the edges, accumulating the sign of the crossing test
// of every edge against the horizontal ray through pt. An edge that contains
// pt short-circuits to OnBorder.
func (poly Polygon) Classify(pt Point) Location {
	if poly.IsDegenerate() {
		return Outside
	}
	res := -1
	for i := range poly {
		res *= crossingSign(pt, poly[i], poly[(i+1)%len(poly)])
		if res == 0 {
			break
		}
	}
	return Location(res)
}

// ClassifyInBox is like Classify but rejects points outside box without
// walking the edges. box is usually the result of BoundingBox.
func (poly Polygon) ClassifyInBox(pt Point, box Rect) Location {
	if !box.Contains(pt) {
		return Outside
	}
	return poly.Classify(pt)
}

// crossingSign returns -1 if the ray from a to the right crosses the edge
// b–c, 0 if a lies on the edge, and 1 otherwise.
func crossingSign(a, b, c Point) int {
	if ApproxEqual(a.Y, b.Y) && ApproxEqual(b.Y, c.Y) {
		// Horizontal edge on the ray's line.
		if (b.X <= a.X && a.X <= c.X) || (c.X <= a.X && a.X <= b.X) {
			return 0
		}
		return 1
	}
	if a.ApproxEqual(b) {
		return 0
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y <= b.Y || a.Y > c.Y {
		return 1
	}
	d1 := (b.X - a.X) * (c.Y - a.Y)
	d2 := (b.Y - a.Y) * (c.X - a.X)
	if ApproxEqual(d1, d2) {
		return 0
	}
	return sign(d2 - d1)
}

// Contains reports whether pt lies inside the polygon, using the even-odd
// rule on a ray cast to the right of pt. Points on the border may be reported
// either way; use Classify to detect them.
func (poly Polygon) Contains(pt Point) bool {
	if poly.IsDegenerate() {
		return false
	}
	ray := Line{pt, Pt(pt.X+1, pt.Y)}
	count := 0
	for i := range poly {
		cross, _, t, ok := ray.CrossingParams(poly.Edge(i))
		if !ok || t < 0 || t > 1 {
			continue
		}
		if cross.X > pt.X {
			count++
		}
	}
	return count%2 != 0
}

// CurvePoint is a point on the border of a boundary, together with the index
// of the edge or segment it lies on and its parameter on that edge or segment.
type CurvePoint struct {
	Point Point
	T     float64
	Index int
}

// Nearest returns the point on the polygon's border closest to pt and its
// distance to pt. Degenerate polygons return an Index of -1 and an infinite
// distance.
func (poly Polygon) Nearest(pt Point) (CurvePoint, float64) {
	best := CurvePoint{Index: -1}
	minDist := math.Inf(1)
	if poly.IsDegenerate() {
		return best, minDist
	}
	for i := range poly {
		near, dist, t := poly.Edge(i).Nearest(pt)
		if dist < minDist {
			minDist = dist
			best = CurvePoint{Point: near, T: t, Index: i}
		}
	}
	return best, minDist
}

// SegmentInside reports whether the segment from a to b lies inside the
// polygon. It tests two points slightly inward from a and b, which is robust
// when a and b themselves lie on the border.
func (poly Polygon) SegmentInside(box Rect, a, b Point) bool {
	const lambda = 0.001
	p1 := a.Lerp(b, 1-lambda)
	p2 := a.Lerp(b, lambda)
	return poly.ClassifyInBox(p1, box) == Inside &&
		poly.ClassifyInBox(p2, box) == Inside
}

// VertexNear returns the index of the first vertex whose coordinates are both
// within maxDist of pt, or -1.
func (poly Polygon) VertexNear(pt Point, maxDist float64) int {
	for i, v := range poly {
		if v.Near(pt, maxDist) {
			return i
		}
	}
	return -1
}

// Transform applies aff to every vertex.
func (poly Polygon) Transform(aff Affine) Polygon {
	out := make(Polygon, len(poly))
	for i, pt := range poly {
		out[i] = pt.Transform(aff)
	}
	return out
}

// Centroid returns the arithmetic mean of the vertices.
func (poly Polygon) Centroid() Point {
	if len(poly) == 0 {
		return Point{}
	}
	var x, y float64
	for _, pt := range poly {
		x += pt.X
		y += pt.Y
	}
	n := float64(len(poly))
	return Pt(x/n, y/n)
}
