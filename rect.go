package billiards

import "math"

// Rect is an axis-aligned rectangle. It is used as the cheap pre-rejection
// box in front of the precise containment tests.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// BoundingRect returns the smallest rectangle containing pts. It returns the
// zero Rect for no points.
func BoundingRect(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// NewRectFromPoints returns the rectangle spanned by the opposite corners p0
// and p1.
func NewRectFromPoints(p0, p1 Point) Rect { return BoundingRect(p0, p1) }

// Abs returns r with its corners ordered, so that width and height are
// non-negative.
func (r Rect) Abs() Rect {
	return Rect{min(r.X0, r.X1), min(r.Y0, r.Y1), max(r.X0, r.X1), max(r.Y0, r.Y1)}
}

// Width returns X1 − X0, which is negative for unordered rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0, which is negative for unordered rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point { return Pt(0.5*(r.X0+r.X1), 0.5*(r.Y0+r.Y1)) }

// Contains reports whether pt lies inside r or on its border.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// UnionPoint grows r to include pt. r must be ordered.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{min(r.X0, pt.X), min(r.Y0, pt.Y), max(r.X1, pt.X), max(r.Y1, pt.Y)}
}

// Union returns the smallest rectangle containing r and o. Both must be
// ordered.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// Inflate moves every side of r outwards, by width horizontally and by height
// vertically.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{r.X0 - width, r.Y0 - height, r.X1 + width, r.Y1 + height}
}

// Expand rounds the corners of r outwards to integer coordinates. r must be
// ordered.
func (r Rect) Expand() Rect {
	return Rect{math.Floor(r.X0), math.Floor(r.Y0), math.Ceil(r.X1), math.Ceil(r.Y1)}
}

// Padded returns r rounded outwards to integers and widened by one unit on
// every side. Boundary boxes are padded so that points on the boundary,
// subject to rounding error, are never rejected.
func (r Rect) Padded() Rect { return r.Expand().Inflate(1, 1) }
