package billiards

import "math"

// Line represents a line through two points. Depending on the operation it
// is treated as the segment from P0 to P1 or as the infinite line through
// both points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Direction returns P1 − P0.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0)
}

// IsDegenerate reports whether both points coincide within tolerance.
func (l Line) IsDegenerate() bool {
	return l.P0.ApproxEqual(l.P1)
}

// Eval returns the point at parameter t, with P0 at 0 and P1 at 1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Implicit returns the coefficients of the implicit form A·x + B·y + C = 0.
func (l Line) Implicit() (a, b, c float64) {
	a = l.P1.Y - l.P0.Y
	b = l.P0.X - l.P1.X
	c = l.P0.X*(l.P0.Y-l.P1.Y) + l.P0.Y*(l.P1.X-l.P0.X)
	return a, b, c
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false if the lines are parallel or collinear.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	pt, _, _, ok := l.CrossingParams(o)
	return pt, ok
}

// CrossingParams computes the crossing point of the two infinite lines along
// with the parametric position of that point on each of them: s on l and t on
// o. The crossing lies on the segment l iff s ∈ [0, 1], and on the segment o
// iff t ∈ [0, 1]; callers test them independently to distinguish between
// segment-segment and segment-line intersections.
//
// It reports false if the determinant vanishes, that is, if the lines are
// parallel or collinear.
func (l Line) CrossingParams(o Line) (pt Point, s, t float64, ok bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)

	det := d1.X*d2.Y - d1.Y*d2.X
	if approxZero(det) {
		return Point{}, -1, -1, false
	}

	// Cramer's rule on the implicit forms.
	c1 := l.P0.X*l.P1.Y - l.P0.Y*l.P1.X
	c2 := o.P0.X*o.P1.Y - o.P0.Y*o.P1.X
	pt = Point{
		X: (d1.X*c2 - d2.X*c1) / det,
		Y: (d1.Y*c2 - d2.Y*c1) / det,
	}

	// Solve d1·s − d2·t = o.P0 − l.P0.
	w := o.P0.Sub(l.P0)
	s = (w.X*d2.Y - w.Y*d2.X) / det
	t = (w.X*d1.Y - w.Y*d1.X) / det
	return pt, s, t, true
}

// Nearest returns the point on the segment closest to pt, its distance to pt
// and its parameter t ∈ [0, 1]. A degenerate segment returns P0 with t = 0.
func (l Line) Nearest(pt Point) (near Point, dist, t float64) {
	if l.IsDegenerate() {
		return l.P0, pt.Distance(l.P0), 0
	}
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	switch {
	case dotp <= 0.0:
		return l.P0, pt.Distance(l.P0), 0
	case dotp >= dSquared:
		return l.P1, pt.Distance(l.P1), 1
	default:
		t := dotp / dSquared
		near := l.Eval(t)
		return near, pt.Distance(near), t
	}
}

// DistanceToLine returns the perpendicular distance from pt to the infinite
// line. A degenerate line returns the distance to P0.
func (l Line) DistanceToLine(pt Point) float64 {
	if l.IsDegenerate() {
		return pt.Distance(l.P0)
	}
	a, b, c := l.Implicit()
	return math.Abs(a*pt.X+b*pt.Y+c) / math.Hypot(a, b)
}
