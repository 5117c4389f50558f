package billiards

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	CubicToKind
	ClosePathKind
)

// PathElement is a single drawing command. MoveTo and LineTo use P0, CubicTo
// uses P0, P1 and P2 as the two control points and the end point.
type PathElement struct {
	Kind       PathElementKind
	P0, P1, P2 Point
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}
func ClosePath() PathElement { return PathElement{Kind: ClosePathKind} }

// PathElements returns the closed outline of the polygon.
func (poly Polygon) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(poly) == 0 {
			return
		}
		if !yield(MoveTo(poly[0])) {
			return
		}
		for _, pt := range poly[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Polyline returns the open path through pts.
func Polyline(pts []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pts {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// PathElements returns the outline of the curve. Cubic segments are emitted
// as they are; segments of other orders are flattened into lines that stay
// within tolerance of the curve. A curve whose last segment ends at the start
// of the first is closed.
func (c BezierCurve) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(c) == 0 || len(c[0]) == 0 {
			return
		}
		if !yield(MoveTo(c[0].Start())) {
			return
		}
		for _, seg := range c {
			for el := range seg.pathElements(tolerance) {
				if !yield(el) {
					return
				}
			}
		}
		if c[len(c)-1].End().ApproxEqual(c[0].Start()) {
			yield(ClosePath())
		}
	}
}

// pathElements returns the drawing commands for seg, without the initial
// MoveTo.
func (seg BezierSegment) pathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		switch seg.Order() {
		case 3:
			yield(CubicTo(seg[1], seg[2], seg[3]))
			return
		case 1:
			yield(LineTo(seg[1]))
			return
		}
		if len(seg) < 2 {
			return
		}
		// The distance between the curve and its chords is bounded by
		// n(n-1)/8 times the largest second difference of the control points,
		// divided by the squared number of chords.
		var dd float64
		for i := range len(seg) - 2 {
			d := seg[i+2].Sub(seg[i+1]).Sub(seg[i+1].Sub(seg[i]))
			dd = max(dd, d.Hypot())
		}
		n := float64(seg.Order())
		m := max(1, int(math.Ceil(math.Sqrt(n*(n-1)*dd/(8*tolerance)))))
		for i := 1; i <= m; i++ {
			pt := seg.End()
			if i < m {
				pt = seg.Eval(float64(i) / float64(m))
			}
			if !yield(LineTo(pt)) {
				return
			}
		}
	}
}

// PathElements returns the arc as a sequence of cubic Bézier curves.
func (a CircleArc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.P0)) {
			return
		}
		for _, seg := range a.Beziers(tolerance) {
			if !yield(CubicTo(seg[1], seg[2], seg[3])) {
				return
			}
		}
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}
