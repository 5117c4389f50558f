package billiards

import "math"

// Affine is the transform
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// applied to column vectors (x, y, 1). Composition with [Affine.Mul] applies
// the right operand first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves points unchanged.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale scales by x horizontally and by y vertically.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates by th radians about the origin, turning the positive x-axis
// towards the positive y-axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Reflect mirrors points across l. A degenerate line yields NaN
// coefficients.
func Reflect(l Line) Affine {
	d := l.Direction().Unit()
	// Householder reflection along the line's normal, conjugated by a
	// translation to the line's first point.
	xx, xy, yy := d.X*d.X, d.X*d.Y, d.Y*d.Y
	m := Affine{xx - yy, 2 * xy, 2 * xy, yy - xx, 0, 0}
	p := Vec2(l.P0)
	return Translate(p.Negate()).Then(m).ThenTranslate(p)
}

// Fit maps src onto dst, scaled uniformly so that src fits and centered in
// dst. With flipY, the y-axis is reversed, which maps y-up coordinates onto
// y-down images. Degenerate extents of src are not scaled along.
func Fit(src, dst Rect, flipY bool) Affine {
	src, dst = src.Abs(), dst.Abs()
	s := 1.0
	sw, sh := src.Width(), src.Height()
	switch {
	case sw > 0 && sh > 0:
		s = min(dst.Width()/sw, dst.Height()/sh)
	case sw > 0:
		s = dst.Width() / sw
	case sh > 0:
		s = dst.Height() / sh
	}
	sy := s
	if flipY {
		sy = -s
	}
	return Translate(Vec2(src.Center()).Negate()).
		ThenScale(s, sy).
		ThenTranslate(Vec2(dst.Center()))
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transform that applies aff, then o.
func (aff Affine) Then(o Affine) Affine { return o.Mul(aff) }

func (aff Affine) ThenRotate(th float64) Affine { return aff.Then(Rotate(th)) }

func (aff Affine) ThenScale(x, y float64) Affine { return aff.Then(Scale(x, y)) }

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Linear applies the linear part of aff to v, ignoring the translation.
// Tangents and directions transform this way.
func (aff Affine) Linear(v Vec2) Vec2 {
	return Vec(aff.N0*v.X+aff.N2*v.Y, aff.N1*v.X+aff.N3*v.Y)
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. The coefficients are NaN or infinite
// if aff isn't invertible.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.Determinant()
	return Affine{
		inv * aff.N3,
		-inv * aff.N1,
		-inv * aff.N2,
		inv * aff.N0,
		inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}
