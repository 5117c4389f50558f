package billiards

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestCrossingPoint(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	pt, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected crossing point")
	}
	diff(t, pt, Pt(10, 0), cmpopts.EquateApprox(0, 1e-12))

	// Whole lines cross even when the segments don't.
	vLine = Line{Pt(-10.0, 10.0), Pt(-10.0, 20.0)}
	pt, ok = hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected crossing point")
	}
	diff(t, pt, Pt(-10, 0), cmpopts.EquateApprox(0, 1e-12))

	if _, ok := hLine.CrossingPoint(Line{Pt(0, 1), Pt(5, 1)}); ok {
		t.Error("parallel lines shouldn't cross")
	}
	if _, ok := hLine.CrossingPoint(Line{Pt(5, 0), Pt(7, 0)}); ok {
		t.Error("collinear lines shouldn't report a crossing")
	}
}

func TestCrossingParams(t *testing.T) {
	l := Line{Pt(0, 0), Pt(1, 0)}
	o := Line{Pt(0.5, -1), Pt(0.5, 1)}
	pt, s, u, ok := l.CrossingParams(o)
	if !ok {
		t.Fatal("expected crossing point")
	}
	diff(t, pt, Pt(0.5, 0), cmpopts.EquateApprox(0, 1e-12))
	diff(t, s, 0.5, cmpopts.EquateApprox(0, 1e-12))
	diff(t, u, 0.5, cmpopts.EquateApprox(0, 1e-12))

	// The crossing lies on the second segment but outside the first.
	o = Line{Pt(3, -1), Pt(3, 3)}
	_, s, u, _ = l.CrossingParams(o)
	diff(t, s, 3.0, cmpopts.EquateApprox(0, 1e-12))
	diff(t, u, 0.25, cmpopts.EquateApprox(0, 1e-12))
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt   Point
		near Point
		dist float64
		t    float64
	}{
		{Pt(5, 3), Pt(5, 0), 3, 0.5},
		{Pt(-3, 4), Pt(0, 0), 5, 0},
		{Pt(13, -4), Pt(10, 0), 5, 1},
	}
	for _, tt := range tests {
		near, dist, param := l.Nearest(tt.pt)
		diff(t, near, tt.near, cmpopts.EquateApprox(0, 1e-12))
		diff(t, dist, tt.dist, cmpopts.EquateApprox(0, 1e-12))
		diff(t, param, tt.t, cmpopts.EquateApprox(0, 1e-12))
	}

	degenerate := Line{Pt(1, 1), Pt(1, 1)}
	near, dist, param := degenerate.Nearest(Pt(4, 5))
	diff(t, near, Pt(1, 1))
	diff(t, dist, 5.0)
	diff(t, param, 0.0)
}

func TestLineImplicit(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 6)}
	a, b, c := l.Implicit()
	for _, pt := range []Point{l.P0, l.P1, l.Eval(0.3), l.Eval(-2)} {
		if v := a*pt.X + b*pt.Y + c; math.Abs(v) > 1e-12 {
			t.Errorf("%v isn't on the implicit line, residual %g", pt, v)
		}
	}
	diff(t, Line{Pt(0, 0), Pt(4, 0)}.DistanceToLine(Pt(100, -3)), 3.0)
}
