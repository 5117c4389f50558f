package billiards

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Boundaries, impact points and ball
// positions are Points; differences between them are [Vec2]s.
type Point struct {
	X, Y float64
}

// Vec2 is a displacement in the plane, such as the direction of a chord or
// the tangent of a boundary.
type Vec2 struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }
func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (pt Point) Translate(v Vec2) Point { return Point{pt.X + v.X, pt.Y + v.Y} }

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{pt.X - o.X, pt.Y - o.Y} }

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Lerp returns the point at t on the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{pt.X + t*(o.X-pt.X), pt.Y + t*(o.Y-pt.Y)}
}

func (pt Point) Midpoint(o Point) Point {
	return Point{0.5 * (pt.X + o.X), 0.5 * (pt.Y + o.Y)}
}

// ApproxEqual reports whether both coordinates of pt and o are equal within
// the tolerance of [ApproxEqual].
func (pt Point) ApproxEqual(o Point) bool {
	return ApproxEqual(pt.X, o.X) && ApproxEqual(pt.Y, o.Y)
}

func (pt Point) Distance(o Point) float64 { return math.Hypot(pt.X-o.X, pt.Y-o.Y) }

func (pt Point) DistanceSquared(o Point) float64 { return pt.Sub(o).Hypot2() }

// DistanceL1 returns the Manhattan distance between pt and o.
func (pt Point) DistanceL1(o Point) float64 {
	return math.Abs(pt.X-o.X) + math.Abs(pt.Y-o.Y)
}

// DistanceMax returns the Chebyshev (L∞) distance between pt and o.
func (pt Point) DistanceMax(o Point) float64 {
	return max(math.Abs(pt.X-o.X), math.Abs(pt.Y-o.Y))
}

// Near reports whether o lies strictly within maxDist of pt along both axes.
// This is the hit test used for picking vertices.
func (pt Point) Near(o Point, maxDist float64) bool {
	return pt.DistanceMax(o) < maxDist
}

func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Hypot2() float64 { return v.Dot(v) }
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }
func (v Vec2) Parallel(o Vec2) bool { return ApproxEqual(v.X*o.Y, v.Y*o.X) }
func (v Vec2) Orthogonal(o Vec2) bool { return ApproxEqual(v.Y*o.Y, -v.X*o.X) }

// Unit returns v scaled to length 1. The zero vector has no direction and
// yields NaN components.
func (v Vec2) Unit() Vec2 { return v.Mul(1 / v.Hypot()) }

// Rotate returns v rotated by th radians, anti-clockwise with the y-axis
// pointing up.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Reflect mirrors v across the line spanned by axis, as a ball's direction
// is mirrored across the boundary tangent.
func (v Vec2) Reflect(axis Vec2) Vec2 {
	return axis.Mul(2 * axis.Dot(v) / axis.Hypot2()).Sub(v)
}

// IsZero reports whether both components are zero within the tolerance of
// [ApproxEqual].
func (v Vec2) IsZero() bool { return approxZero(v.X) && approxZero(v.Y) }
