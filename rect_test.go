package billiards

import "testing"

func TestBoundingRect(t *testing.T) {
	r := NewRectFromPoints(Pt(3, -1), Pt(-2, 4))
	diff(t, Rect{-2, -1, 3, 4}, r)
	if w, h := r.Width(), r.Height(); w != 5 || h != 5 {
		t.Errorf("got size %vx%v, want 5x5", w, h)
	}
	diff(t, Pt(0.5, 1.5), r.Center())

	diff(t, Rect{-1, 0, 4, 7}, BoundingRect(Pt(0, 0), Pt(4, 7), Pt(-1, 2)))
	diff(t, Rect{2, 2, 2, 2}, BoundingRect(Pt(2, 2)))
	diff(t, Rect{}, BoundingRect())
	diff(t, Rect{-1, -2, 3, 1}, Rect{0, -2, 3, 0}.Union(Rect{-1, 0, 1, 1}))
	diff(t, Rect{-1, 0, 2, 5}, Rect{2, 5, -1, 0}.Abs())
}

func TestRectContainsBorder(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	for _, pt := range []Point{Pt(0, 0), Pt(10, 10), Pt(5, 0), Pt(10, 5), Pt(5, 5)} {
		if !r.Contains(pt) {
			t.Errorf("%v should be contained in %v", pt, r)
		}
	}
	for _, pt := range []Point{Pt(-0.1, 0), Pt(10, 10.1)} {
		if r.Contains(pt) {
			t.Errorf("%v shouldn't be contained in %v", pt, r)
		}
	}
}

func TestRectPadded(t *testing.T) {
	r := Rect{0.5, -0.5, 1.5, 2.5}
	diff(t, Rect{0, -1, 2, 3}, r.Expand())
	diff(t, Rect{-0.5, -2.5, 2.5, 4.5}, r.Inflate(1, 2))
	diff(t, Rect{-1, -2, 3, 4}, r.Padded())
	diff(t, Rect{-1, 1, 1, 3}, Rect{1, 1, 1, 1}.UnionPoint(Pt(-1, 3)))

	// Polygons and curves report padded boxes.
	diff(t, Rect{-2, -2, 2, 2}, unitSquare.BoundingBox())
}
