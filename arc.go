package billiards

import "math"

// CircleArc is the arc of a circle joining two points, described by the
// height of its bulge above the chord, the sagitta. With the y-axis pointing
// up, a positive sagitta bulges to the right of the chord when walking from
// P0 to P1, a negative one to the left.
//
// An arc with a sagitta of zero is the straight chord and has a radius of
// zero.
type CircleArc struct {
	P0, P1  Point
	Sagitta float64
	Center  Point
	Radius  float64
}

// NewCircleArc returns the arc from p0 to p1 with sagitta h.
func NewCircleArc(p0, p1 Point, h float64) CircleArc {
	a := CircleArc{P0: p0, P1: p1, Sagitta: h}
	s := p0.Distance(p1)
	if h == 0 || s == 0 {
		return a
	}
	habs := math.Abs(h)
	r := habs/2 + s*s/(8*habs)
	t := math.Sqrt(max(0, r*r/(s*s)-0.25))
	if h < 0 {
		t = -t
	}
	if habs > r {
		// More than half a circle; the center is on the side of the bulge.
		t = -t
	}
	d := p1.Sub(p0)
	a.Center = p0.Midpoint(p1).Translate(Vec(-d.Y, d.X).Mul(t))
	a.Radius = r
	return a
}

// IsFlat reports whether the arc degenerates to its chord.
func (a CircleArc) IsFlat() bool {
	return a.Radius == 0
}

// Chord returns the straight line from P0 to P1.
func (a CircleArc) Chord() Line {
	return Line{a.P0, a.P1}
}

// Bulge returns the point of the arc farthest from the chord.
func (a CircleArc) Bulge() Point {
	mid := a.P0.Midpoint(a.P1)
	s := a.P0.Distance(a.P1)
	if s == 0 {
		return mid
	}
	d := a.P1.Sub(a.P0)
	return mid.Translate(d.Perp().Mul(-a.Sagitta / s))
}

// ArcLength returns the length of the arc. Flat arcs return the length of
// the chord.
func (a CircleArc) ArcLength() float64 {
	s := a.P0.Distance(a.P1)
	if a.IsFlat() {
		return s
	}
	d := 2 * a.Radius
	phi := math.Asin(min(1, s/d))
	if math.Abs(a.Sagitta) > a.Radius {
		phi = math.Pi - phi
	}
	return d * phi
}

// AngleAt returns the angle of pt as seen from the center of the circle, in
// [0, 2π). Flat arcs return 0.
func (a CircleArc) AngleAt(pt Point) float64 {
	if a.IsFlat() {
		return 0
	}
	alpha := pt.Sub(a.Center).Angle()
	if alpha < 0 {
		alpha += 2 * math.Pi
	}
	return alpha
}

// PointAt returns the point of the circle at the given angle.
func (a CircleArc) PointAt(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return a.Center.Translate(Vec(cos*a.Radius, sin*a.Radius))
}

// Project maps pt, usually a point on the chord, radially onto the circle.
// Flat arcs return pt unchanged.
func (a CircleArc) Project(pt Point) Point {
	if a.IsFlat() {
		return pt
	}
	return a.PointAt(a.AngleAt(pt))
}

// Angles returns the start angle of the arc and its signed sweep, such that
// the arc runs from P0 through the bulge to P1.
func (a CircleArc) Angles() (start, sweep float64) {
	if a.IsFlat() {
		return 0, 0
	}
	start = a.AngleAt(a.P0)
	ccw := math.Mod(a.AngleAt(a.P1)-start+2*math.Pi, 2*math.Pi)
	bulge := math.Mod(a.AngleAt(a.Bulge())-start+2*math.Pi, 2*math.Pi)
	if bulge < ccw {
		return start, ccw
	}
	return start, ccw - 2*math.Pi
}

// Beziers approximates the arc with cubic Bézier segments, subdividing it
// finely enough to stay within tolerance of the circle. Flat arcs yield a
// single segment along the chord.
func (a CircleArc) Beziers(tolerance float64) []BezierSegment {
	if a.IsFlat() {
		return []BezierSegment{{a.P0, a.P0.Lerp(a.P1, 1.0/3.0), a.P0.Lerp(a.P1, 2.0/3.0), a.P1}}
	}
	start, sweep := a.Angles()

	// Subdivisions per full circle, based on the error tolerance.
	nError := max(math.Pow(1.1163*a.Radius/tolerance, 1.0/6.0), 3.999_999)
	n := max(1, math.Ceil(nError*math.Abs(sweep)/(2*math.Pi)))
	step := sweep / n
	arm := math.Copysign((4.0/3.0)*math.Tan(math.Abs(step/4)), sweep)

	out := make([]BezierSegment, 0, int(n))
	angle0 := start
	p0 := a.P0
	for i := range int(n) {
		angle1 := angle0 + step
		p3 := a.PointAt(angle1)
		if i == int(n)-1 {
			p3 = a.P1
		}
		p1 := p0.Translate(tangentAt(angle0).Mul(a.Radius * arm))
		p2 := p3.Translate(tangentAt(angle1).Mul(-a.Radius * arm))
		out = append(out, BezierSegment{p0, p1, p2, p3})
		angle0, p0 = angle1, p3
	}
	return out
}

func tangentAt(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec(-sin, cos)
}
