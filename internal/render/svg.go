package render

import (
	"bufio"
	"fmt"
	"io"

	"honnef.co/go/billiards"
)

// WriteSVG writes an SVG document showing tbl and trajs to w. Coordinates
// are mapped to pixels the same way [Image] maps them.
func WriteSVG(w io.Writer, tbl *billiards.Table, trajs []Trajectory, opts Options) error {
	bw := bufio.NewWriter(w)
	aff := Transform(tbl.BoundingBox(), opts.Width, opts.Height, opts.Border)
	svgOpts := billiards.SVGOptions{MaxPrecision: 3}

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %[1]d %[2]d">`+"\n",
		opts.Width, opts.Height)
	if opts.Background != nil {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", Hex(opts.Background))
	}

	fill := "none"
	if opts.Fill != nil {
		fill = Hex(opts.Fill)
	}
	fmt.Fprintf(bw, `<path fill="%s" stroke="%s" stroke-width="%g" d="`, fill, Hex(opts.Stroke), opts.LineWidth)
	if err := billiards.WriteSVG(bw, tablePath(tbl, aff, opts.Tolerance), svgOpts); err != nil {
		return err
	}
	fmt.Fprintf(bw, `"/>`+"\n")

	for _, tr := range trajs {
		pts := make([]billiards.Point, len(tr.Points))
		for i, pt := range tr.Points {
			pts[i] = pt.Transform(aff)
		}
		fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="%g" d="`, Hex(tr.Color), opts.LineWidth/2)
		if err := billiards.WriteSVG(bw, billiards.Polyline(pts), svgOpts); err != nil {
			return err
		}
		fmt.Fprintf(bw, `"/>`+"\n")
		if opts.BallRadius > 0 {
			pos := tr.Position.Transform(aff)
			fmt.Fprintf(bw, `<circle cx="%.3f" cy="%.3f" r="%g" fill="%s"/>`+"\n",
				pos.X, pos.Y, opts.BallRadius, Hex(tr.Color))
		}
	}
	fmt.Fprintf(bw, "</svg>\n")
	return bw.Flush()
}
