// Package render draws billiard tables and ball trajectories into raster
// images and SVG documents.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"
	"slices"

	"golang.org/x/image/vector"

	"honnef.co/go/billiards"
)

// Options control the output of [Image] and [WriteSVG].
type Options struct {
	Width, Height int
	// Border is the empty space, in pixels, between the table and the edges
	// of the image.
	Border     float64
	Background color.Color
	// Fill is the color of the table's interior. A nil Fill leaves it
	// transparent.
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
	// BallRadius is the radius of the disk drawn at the current position of
	// every ball. Zero disables drawing balls.
	BallRadius float64
	// Tolerance is the maximum distance, in pixels, between curves and the
	// lines approximating them.
	Tolerance float64
}

// DefaultOptions returns options for an 800×800 image.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     800,
		Border:     20,
		Background: color.White,
		Fill:       color.RGBA{0xf4, 0xf4, 0xf4, 0xff},
		Stroke:     color.Black,
		LineWidth:  2,
		BallRadius: 5,
		Tolerance:  0.25,
	}
}

// Trajectory is the path of a ball through a table.
type Trajectory struct {
	// Points are the impact points, oldest first.
	Points []billiards.Point
	// Position is the ball's current position.
	Position billiards.Point
	Color    color.Color
}

// BallTrajectory returns the trajectory of b, from its oldest recorded
// impact point to the point it currently travels to.
func BallTrajectory(b *billiards.Ball, c color.Color) Trajectory {
	pts := b.History().Points()
	slices.Reverse(pts)
	pts = append(pts, b.Engine().End().Point)
	return Trajectory{Points: pts, Position: b.Position(), Color: c}
}

// Transform returns the transform that centers box in a width×height image,
// scaled uniformly to fit inside the border, with the y-axis pointing up.
func Transform(box billiards.Rect, width, height int, border float64) billiards.Affine {
	dst := billiards.Rect{X0: border, Y0: border, X1: float64(width) - border, Y1: float64(height) - border}
	return billiards.Fit(box, dst, true)
}

// Image draws tbl and trajs.
func Image(tbl *billiards.Table, trajs []Trajectory, opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	aff := Transform(tbl.BoundingBox(), opts.Width, opts.Height, opts.Border)
	r := &rasterizer{
		z:   vector.NewRasterizer(opts.Width, opts.Height),
		dst: dst,
	}

	if opts.Fill != nil {
		r.fill(tablePath(tbl, aff, opts.Tolerance), opts.Fill)
	}
	r.stroke(tableOutline(tbl, aff, opts.Tolerance), true, opts.LineWidth, opts.Stroke)

	for _, tr := range trajs {
		pts := make([]billiards.Point, len(tr.Points))
		for i, pt := range tr.Points {
			pts[i] = pt.Transform(aff)
		}
		r.stroke(pts, false, opts.LineWidth/2, tr.Color)
		if opts.BallRadius > 0 {
			r.disk(tr.Position.Transform(aff), opts.BallRadius, opts.Tolerance, tr.Color)
		}
	}
	return dst
}

// WritePNG draws tbl and trajs and writes the result to w as a PNG image.
func WritePNG(w io.Writer, tbl *billiards.Table, trajs []Trajectory, opts Options) error {
	return png.Encode(w, Image(tbl, trajs, opts))
}

// tablePath returns the boundary of tbl in pixel coordinates.
func tablePath(tbl *billiards.Table, aff billiards.Affine, tolerance float64) iter.Seq[billiards.PathElement] {
	if tbl.IsCurved() {
		return tbl.Curve.Transform(aff).PathElements(tolerance)
	}
	return tbl.Polygon.Transform(aff).PathElements()
}

// tableOutline returns the boundary of tbl in pixel coordinates, flattened
// within tolerance.
func tableOutline(tbl *billiards.Table, aff billiards.Affine, tolerance float64) []billiards.Point {
	if !tbl.IsCurved() {
		return tbl.Polygon.Transform(aff)
	}
	var out []billiards.Point
	for _, seg := range tbl.Curve.Transform(aff) {
		pts := flatten(seg, tolerance)
		if len(out) > 0 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	if len(out) > 1 && out[0].ApproxEqual(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// flatten returns points on seg, including both end points, such that the
// lines connecting them stay within tolerance of the curve.
func flatten(seg billiards.BezierSegment, tolerance float64) []billiards.Point {
	n := seg.Order()
	if n < 1 {
		return slices.Clone(seg)
	}
	var dd float64
	for i := range len(seg) - 2 {
		d := seg[i+2].Sub(seg[i+1]).Sub(seg[i+1].Sub(seg[i]))
		dd = max(dd, d.Hypot())
	}
	m := max(1, int(math.Ceil(math.Sqrt(float64(n*(n-1))*dd/(8*tolerance)))))
	out := make([]billiards.Point, m+1)
	for i := range m {
		out[i] = seg.Eval(float64(i) / float64(m))
	}
	out[m] = seg.End()
	return out
}
