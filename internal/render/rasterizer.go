package render

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"golang.org/x/image/vector"

	"honnef.co/go/billiards"
)

// rasterizer composites filled paths onto dst. All coordinates are in
// pixels.
type rasterizer struct {
	z   *vector.Rasterizer
	dst *image.RGBA
}

func (r *rasterizer) reset() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *rasterizer) paint(c color.Color) {
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// fill fills the area enclosed by seq.
func (r *rasterizer) fill(seq iter.Seq[billiards.PathElement], c color.Color) {
	r.reset()
	for el := range seq {
		switch el.Kind {
		case billiards.MoveToKind:
			r.z.MoveTo(f32(el.P0))
		case billiards.LineToKind:
			r.z.LineTo(f32(el.P0))
		case billiards.CubicToKind:
			bx, by := f32(el.P0)
			cx, cy := f32(el.P1)
			dx, dy := f32(el.P2)
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
		case billiards.ClosePathKind:
			r.z.ClosePath()
		}
	}
	r.paint(c)
}

// stroke draws the polyline through pts with the given width. Every line is
// rasterized as a rectangle; all rectangles have the same winding, so
// overlapping joins don't cancel out.
func (r *rasterizer) stroke(pts []billiards.Point, closed bool, width float64, c color.Color) {
	if len(pts) < 2 || width <= 0 || c == nil {
		return
	}
	r.reset()
	n := len(pts) - 1
	if closed {
		n++
	}
	for i := range n {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		d := p1.Sub(p0)
		if d.Hypot() == 0 {
			continue
		}
		// Half-width normal, extended along the line to cover the joins.
		ext := d.Unit().Mul(width / 2)
		nv := ext.Perp()
		a, b := p0.Translate(ext.Negate()), p1.Translate(ext)
		r.z.MoveTo(f32(a.Translate(nv)))
		r.z.LineTo(f32(b.Translate(nv)))
		r.z.LineTo(f32(b.Translate(nv.Negate())))
		r.z.LineTo(f32(a.Translate(nv.Negate())))
		r.z.ClosePath()
	}
	r.paint(c)
}

// disk draws a filled circle, built from two half circles.
func (r *rasterizer) disk(center billiards.Point, radius, tolerance float64, c color.Color) {
	if c == nil {
		return
	}
	left := center.Translate(billiards.Vec(-radius, 0))
	right := center.Translate(billiards.Vec(radius, 0))
	r.fill(func(yield func(billiards.PathElement) bool) {
		for el := range billiards.NewCircleArc(left, right, radius).PathElements(tolerance) {
			if !yield(el) {
				return
			}
		}
		for _, seg := range billiards.NewCircleArc(right, left, radius).Beziers(tolerance) {
			if !yield(billiards.CubicTo(seg[1], seg[2], seg[3])) {
				return
			}
		}
		yield(billiards.ClosePath())
	}, c)
}

func f32(pt billiards.Point) (float32, float32) {
	return float32(pt.X), float32(pt.Y)
}
