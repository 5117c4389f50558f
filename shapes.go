package billiards

import "math"

// The example boundaries in this file are given in unit coordinates, centered
// on the origin and fitting into [-1, 1]². Use [FitArea] or any other Affine
// to place them.

// FitArea returns the transform that places a unit-coordinate shape in the
// square of side min(width, height) at the origin, rotated by angle radians.
// size, in percent, scales the shape between the border (0) and the full
// square minus the border (100).
func FitArea(width, height, size, border, angle float64) Affine {
	half := min(width, height) / 2
	scale := border + size/100*(half-2*border)
	return Rotate(angle).ThenScale(scale, scale).ThenTranslate(Vec(half, half))
}

// RegularPolygon returns the regular polygon with n vertices on the unit
// circle, starting at (1, 0).
func RegularPolygon(n int) Polygon {
	poly := make(Polygon, n)
	for i := range poly {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		poly[i] = Pt(cos, sin)
	}
	return poly
}

// RegularStar returns a star with n points, alternating between the unit
// circle and a circle of radius 0.6.
func RegularStar(n int) Polygon {
	const outer, inner = 1.0, 0.6
	poly := make(Polygon, 2*n)
	for i := range poly {
		r := outer
		if i%2 != 0 {
			r = inner
		}
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(2*n))
		poly[i] = Pt(r*cos, r*sin)
	}
	return poly
}

// circleVertices is the number of vertices of the circle and ellipse
// approximations.
const circleVertices = 300

// Circle approximates the unit circle with a polygon.
func Circle() Polygon {
	return Ellipse(1, 1)
}

// Ellipse approximates the axis-aligned ellipse with the given radii with a
// polygon.
func Ellipse(rx, ry float64) Polygon {
	poly := make(Polygon, circleVertices)
	for i := range poly {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleVertices)
		poly[i] = Pt(rx*cos, ry*sin)
	}
	return poly
}

// DefaultEllipse is the ellipse with radii 1 and 0.8.
func DefaultEllipse() Polygon {
	return Ellipse(1, 0.8)
}

// Quad returns a quadrilateral studied in the literature on symplectic
// billiards, see arXiv:1912.09404.
func Quad() Polygon {
	return Polygon{Pt(1, 5.0/9.0), Pt(-1, 5.0/9.0), Pt(-1, -1.0/9.0), Pt(-1.0/3.0, -7.0/9.0)}
}

// Penthouse returns the pentagon of the same name from arXiv:1912.09404.
func Penthouse() Polygon {
	return Polygon{Pt(0.75, 0.75), Pt(-0.75, 0.75), Pt(-0.75, -0.5), Pt(0.25, -1), Pt(0.75, -0.5)}
}

// SimpleNonConvex returns a non-convex pentagon.
func SimpleNonConvex() Polygon {
	return Polygon{Pt(1, -1), Pt(1, 1), Pt(0.7, -0.4), Pt(-1, 1), Pt(0.5, -1)}
}

// SimpleConvex returns a convex pentagon.
func SimpleConvex() Polygon {
	return Polygon{Pt(1, -0.7), Pt(1, 1), Pt(-1, 1), Pt(-1, -0.8), Pt(-0.7, -1)}
}

// SawTooth returns a polygon whose bottom and top edges are saw blades with
// n teeth each, of heights h2 and h1. n is at least 2 and the heights are at
// most 0.49.
func SawTooth(n int, h1, h2 float64) Polygon {
	n = max(n, 2)
	h1 = min(0.49, h1)
	h2 = min(0.49, h2)
	d := 2 / float64(n)

	poly := make(Polygon, 0, 2*n+2)
	if n%2 == 1 {
		poly = append(poly, Pt(1, 1))
	} else {
		poly = append(poly, Pt(1, 1-h2))
	}
	for i := range n + 1 {
		y := -1.0
		if i%2 == 1 {
			y += h2
		}
		poly = append(poly, Pt(1-float64(i)*d, y))
	}
	for i := range n {
		y := 1.0
		if i%2 == 0 {
			y -= h1
		}
		poly = append(poly, Pt(-1+float64(i)*d, y))
	}
	return poly
}

// Trapezoid returns an isosceles trapezoid.
func Trapezoid() Polygon {
	return Polygon{Pt(0.5, -1), Pt(1, 1), Pt(-1, 1), Pt(-0.5, -1)}
}

// Rectangle returns the square [-1, 1]².
func Rectangle() Polygon {
	return Polygon{Pt(1, -1), Pt(1, 1), Pt(-1, 1), Pt(-1, -1)}
}

// Crossing returns a self-intersecting quadrilateral.
func Crossing() Polygon {
	return Polygon{Pt(0.9, -0.9), Pt(-1, 1), Pt(1, 1), Pt(-1, -1)}
}

// EinsteinTile returns the "hat", an aperiodic monotile, built on hexagons
// with a circumradius of 0.6.
func EinsteinTile() Polygon {
	const r = 0.6
	// Incircle radius and edge length of the base hexagon.
	ri := r * math.Sqrt(3) / 2
	const a = r

	polar := func(radius, turns float64) Point {
		sin, cos := math.Sincos(turns * math.Pi)
		return Pt(radius*cos-ri, radius*sin)
	}
	poly := Polygon{
		Pt(r+a/2-ri, 0),
		polar(2*ri, 11.0/6.0),
		polar(r+a/2, 5.0/3.0),
		polar(r, 5.0/3.0),
		Pt(-ri, -ri),
		Pt(-ri, 0),
		polar(ri, 5.0/6.0),
		polar(r, 2.0/3.0),
		polar(r, 1.0/3.0),
		polar(ri, 1.0/6.0),
		polar(2*ri, 1.0/6.0),
	}
	poly = append(poly,
		Pt(r+a+a*math.Sin(math.Pi/12)-ri, poly[9].Y),
		Pt(r+a-ri, 0),
	)
	return poly
}

// Shapes maps the names of the example boundaries to their constructors.
// Parametrized shapes use fixed parameters.
var Shapes = map[string]func() Polygon{
	"triangle":        func() Polygon { return RegularPolygon(3) },
	"square":          func() Polygon { return RegularPolygon(4) },
	"pentagon":        func() Polygon { return RegularPolygon(5) },
	"hexagon":         func() Polygon { return RegularPolygon(6) },
	"star":            func() Polygon { return RegularStar(5) },
	"circle":          Circle,
	"ellipse":         DefaultEllipse,
	"quad":            Quad,
	"penthouse":       Penthouse,
	"simplenonconvex": SimpleNonConvex,
	"simpleconvex":    SimpleConvex,
	"sawtooth":        func() Polygon { return SawTooth(4, 0.3, 0.4) },
	"trapezoid":       Trapezoid,
	"rectangle":       Rectangle,
	"crossing":        Crossing,
	"einstein":        EinsteinTile,
}
