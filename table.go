package billiards

import (
	"fmt"
	"math"
)

// Table is the boundary balls reflect off: a polygon and, optionally, a
// closed Bézier curve fitted to it. When Curve is set, it is the reflecting
// boundary and the polygon only serves as the source of the fit.
//
// A Table is immutable once created and may be shared by any number of
// engines, including engines stepped concurrently.
type Table struct {
	Polygon Polygon
	Curve   BezierCurve
	// Box encloses the boundary and is used to reject points cheaply.
	Box Rect
}

// NewTable returns a table bounded by poly, or by curve if curve isn't nil.
// The polygon must have at least three vertices and no edge of zero length,
// and the curve must be closed.
func NewTable(poly Polygon, curve BezierCurve) (*Table, error) {
	if poly.IsDegenerate() {
		return nil, fmt.Errorf("%w: polygon has %d vertices", ErrDegenerateBoundary, len(poly))
	}
	for i := range poly {
		if poly.Edge(i).IsDegenerate() {
			return nil, fmt.Errorf("%w: edge %d has zero length", ErrDegenerateBoundary, i)
		}
	}
	tbl := &Table{Polygon: poly, Box: poly.BoundingBox()}
	if curve != nil {
		if err := curve.Validate(true); err != nil {
			return nil, err
		}
		tbl.Curve = curve
		tbl.Box = curve.BoundingBox()
	}
	return tbl, nil
}

// FitTable returns a table bounded by a closed curve of the given order
// fitted to poly. See [FitPolygon] for the meaning of order and scale.
func FitTable(poly Polygon, order int, scale float64) (*Table, error) {
	if poly.IsDegenerate() {
		return nil, fmt.Errorf("%w: polygon has %d vertices", ErrDegenerateBoundary, len(poly))
	}
	return NewTable(poly, FitPolygon(poly, order, scale, true))
}

// IsCurved reports whether the table is bounded by a curve.
func (tbl *Table) IsCurved() bool {
	return tbl.Curve != nil
}

// Len returns the number of edges or segments of the boundary.
func (tbl *Table) Len() int {
	if tbl.IsCurved() {
		return len(tbl.Curve)
	}
	return len(tbl.Polygon)
}

// Eval returns the point at parameter t of edge or segment i.
func (tbl *Table) Eval(i int, t float64) Point {
	if tbl.IsCurved() {
		return tbl.Curve.Eval(i, t)
	}
	return tbl.Polygon.Edge(i).Eval(t)
}

// Tangent returns a vector along the boundary at cp. On a polygon, this is
// the direction of the edge.
func (tbl *Table) Tangent(cp CurvePoint) Vec2 {
	if tbl.IsCurved() {
		return tbl.Curve[cp.Index].Tangent(cp.T)
	}
	return tbl.Polygon.Edge(cp.Index).Direction()
}

// Locate returns the point on the boundary nearest to pt and its distance to
// pt. The result can be used as the start of an [Engine].
func (tbl *Table) Locate(pt Point) (CurvePoint, float64) {
	if tbl.IsCurved() {
		return tbl.Curve.Nearest(pt)
	}
	return tbl.Polygon.Nearest(pt)
}

// Contains reports whether pt lies strictly inside the boundary.
func (tbl *Table) Contains(pt Point) bool {
	if !tbl.Box.Contains(pt) {
		return false
	}
	if tbl.IsCurved() {
		return tbl.Curve.Contains(pt)
	}
	return tbl.Polygon.Classify(pt) == Inside
}

// SegmentInside reports whether the chord from a to b runs inside the
// boundary.
func (tbl *Table) SegmentInside(a, b Point) bool {
	if tbl.IsCurved() {
		return tbl.Curve.SegmentInside(a, b)
	}
	return tbl.Polygon.SegmentInside(tbl.Box, a, b)
}

// Perimeter returns the length of the boundary.
func (tbl *Table) Perimeter() float64 {
	if tbl.IsCurved() {
		return tbl.Curve.Arclen()
	}
	return tbl.Polygon.Perimeter()
}

// Intersection is a point where a line meets the boundary.
type Intersection struct {
	Point Point
	// The edge or segment the point lies on.
	Index int
	// Distance from the point the query was made for.
	Distance float64
	// Parameter of the point on its edge or segment.
	T float64
}

// selfHitTolerance is the distance, relative to the diagonal of the
// bounding box, below which an intersection with a curved boundary is taken
// to be the query origin itself. Line intersections with segments of high
// order are only accurate to about 1e-8.
const selfHitTolerance = 1e-6

// Intersections returns the points where the infinite line meets the
// boundary, with distances measured from origin. Points that coincide with
// origin are omitted, as are points on edge skip. Pass -1 to not skip any
// edge. skip is ignored for curved boundaries.
func (tbl *Table) Intersections(line Line, origin Point, skip int) []Intersection {
	var out []Intersection
	if tbl.IsCurved() {
		minDist := selfHitTolerance * math.Hypot(tbl.Box.Width(), tbl.Box.Height())
		for _, ci := range tbl.Curve.Intersections(line) {
			d := ci.Point.Distance(origin)
			if d <= minDist || ci.Point.ApproxEqual(origin) {
				continue
			}
			out = append(out, Intersection{
				Point:    ci.Point,
				Index:    ci.Index,
				Distance: d,
				T:        ci.SegmentT,
			})
		}
		return out
	}
	for i := range tbl.Polygon {
		if i == skip {
			continue
		}
		pt, _, t, ok := line.CrossingParams(tbl.Polygon.Edge(i))
		if !ok || !inUnitInterval(t) || pt.ApproxEqual(origin) {
			continue
		}
		out = append(out, Intersection{
			Point:    pt,
			Index:    i,
			Distance: pt.Distance(origin),
			T:        clamp01(t),
		})
	}
	return out
}

// BoundingBox returns the box enclosing the boundary.
func (tbl *Table) BoundingBox() Rect {
	return tbl.Box
}

func (tbl *Table) String() string {
	if tbl.IsCurved() {
		return fmt.Sprintf("curved table with %d segments of order %d", len(tbl.Curve), tbl.Curve[0].Order())
	}
	return fmt.Sprintf("polygonal table with %d edges", len(tbl.Polygon))
}

