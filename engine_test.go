package billiards

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func squareTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(unitSquare, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestNewTable(t *testing.T) {
	if _, err := NewTable(Polygon{Pt(0, 0), Pt(1, 0)}, nil); !errors.Is(err, ErrDegenerateBoundary) {
		t.Errorf("two vertices: got %v, want ErrDegenerateBoundary", err)
	}
	if _, err := NewTable(Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(0, 1)}, nil); !errors.Is(err, ErrDegenerateBoundary) {
		t.Errorf("zero-length edge: got %v, want ErrDegenerateBoundary", err)
	}
	broken := FitPolygon(hexagon(), 3, DefaultScale, true)
	broken[2] = broken[2].Transform(Translate(Vec(0.5, 0)))
	if _, err := NewTable(hexagon(), broken); !errors.Is(err, ErrDegenerateBoundary) {
		t.Errorf("broken curve: got %v, want ErrDegenerateBoundary", err)
	}

	tbl := squareTable(t)
	if tbl.IsCurved() || tbl.Len() != 4 {
		t.Errorf("got curved=%t len=%d, want polygonal table with 4 edges", tbl.IsCurved(), tbl.Len())
	}
	diff(t, Rect{-2, -2, 2, 2}, tbl.BoundingBox())

	curved, err := FitTable(hexagon(), 5, DefaultScale)
	if err != nil {
		t.Fatal(err)
	}
	if !curved.IsCurved() || curved.Len() != 6 || curved.Curve[0].Order() != 5 {
		t.Errorf("unexpected curved table: %v", curved)
	}
}

func TestTableLocate(t *testing.T) {
	tbl := squareTable(t)
	cp, d := tbl.Locate(Pt(0.5, -3))
	diff(t, CurvePoint{Point: Pt(0.5, -1), T: 0.75, Index: 0}, cp, cmpopts.EquateApprox(0, 1e-12))
	diff(t, 2.0, d, cmpopts.EquateApprox(0, 1e-12))

	curved, err := FitTable(unitSquare, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	cp, d = curved.Locate(Pt(3, 0.5))
	if cp.Index != 1 {
		t.Errorf("got index %d, want 1", cp.Index)
	}
	diff(t, Pt(1, 0.5), cp.Point, cmpopts.EquateApprox(0, 1e-8))
	diff(t, 2.0, d, cmpopts.EquateApprox(0, 1e-8))
}

func TestTableIntersections(t *testing.T) {
	tbl := squareTable(t)
	got := tbl.Intersections(Line{Pt(0, -1), Pt(1, 0)}, Pt(0, -1), 0)
	want := []Intersection{{Point: Pt(1, 0), Index: 1, Distance: math.Sqrt2, T: 0.5}}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))

	// A diagonal passes through two vertices, each of which lies on two
	// edges.
	got = tbl.Intersections(Line{Pt(-1, -1), Pt(1, 1)}, Pt(0, 0), -1)
	if len(got) != 4 {
		t.Errorf("got %d intersections, want 4: %v", len(got), got)
	}
}

func TestTableIntersectionsCurvedOrigin(t *testing.T) {
	tbl, err := FitTable(RegularPolygon(5), MaxOrder, DefaultScale)
	if err != nil {
		t.Fatal(err)
	}
	// Roots on segments of high order are off by a few 1e-8, so the point
	// the ball leaves from is found again a little way from the origin.
	at := tbl.Eval(0, 0.37)
	dir := Pt(0, 0).Sub(at).Unit()
	origin := at.Translate(dir.Mul(3e-8))
	got := tbl.Intersections(Line{at, at.Translate(dir)}, origin, 0)
	if len(got) == 0 {
		t.Fatal("got no intersections")
	}
	for _, c := range got {
		if c.Distance < 1e-6 {
			t.Errorf("got intersection %v at distance %g from the origin", c.Point, c.Distance)
		}
	}
}

func TestNewEngineInvalidStart(t *testing.T) {
	tbl := squareTable(t)
	for _, start := range []int{-1, 4, 100} {
		if _, err := NewEngine(tbl, Euclidean, start, 0.5, 45); !errors.Is(err, ErrInvalidStart) {
			t.Errorf("start %d: got %v, want ErrInvalidStart", start, err)
		}
	}
	if _, err := NewEngine(tbl, Euclidean, 0, 0.5, math.NaN()); !errors.Is(err, ErrInvalidStart) {
		t.Errorf("NaN angle: got %v, want ErrInvalidStart", err)
	}
}

func TestNewEngineClampsLambda(t *testing.T) {
	tbl := squareTable(t)
	e, err := NewEngine(tbl, Euclidean, 1, 7, 45)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, CurvePoint{Point: Pt(1, 1), T: 1, Index: 1}, e.Start())
	diff(t, e.Start(), e.End())
}

func TestEngineSquare(t *testing.T) {
	e, err := NewEngine(squareTable(t), Euclidean, 0, 0.5, 45)
	if err != nil {
		t.Fatal(err)
	}

	want := []CurvePoint{
		{Point: Pt(1, 0), T: 0.5, Index: 1},
		{Point: Pt(0, 1), T: 0.5, Index: 2},
		{Point: Pt(-1, 0), T: 0.5, Index: 3},
		{Point: Pt(0, -1), T: 0.5, Index: 0},
		{Point: Pt(1, 0), T: 0.5, Index: 1},
	}
	prev := e.End()
	for i, w := range want {
		res := e.Step()
		if res.Status != Moved {
			t.Fatalf("step %d: %v (%v)", i, res.Status, res.Reason)
		}
		diff(t, Pt(135, math.Sqrt2), res.Info, cmpopts.EquateApprox(0, 1e-9))
		diff(t, w, e.End(), cmpopts.EquateApprox(0, 1e-12))
		diff(t, prev, e.Start(), cmpopts.EquateApprox(0, 1e-12))
		diff(t, Line{prev.Point, w.Point}, e.Line(), cmpopts.EquateApprox(0, 1e-12))
		prev = e.End()
	}
}

func TestEnginePerpendicular(t *testing.T) {
	e, err := NewEngine(squareTable(t), Euclidean, 0, 0.5, 90)
	if err != nil {
		t.Fatal(err)
	}
	res := e.Step()
	diff(t, StepResult{Status: Moved, Info: Pt(90, 2)}, res, cmpopts.EquateApprox(0, 1e-12))
	diff(t, CurvePoint{Point: Pt(0, 1), T: 0.5, Index: 2}, e.End(), cmpopts.EquateApprox(0, 1e-12))

	res = e.Step()
	diff(t, StepResult{Status: Moved, Info: Pt(90, 2)}, res, cmpopts.EquateApprox(0, 1e-12))
	diff(t, CurvePoint{Point: Pt(0, -1), T: 0.5, Index: 0}, e.End(), cmpopts.EquateApprox(0, 1e-12))
}

func TestEngineGrazingStall(t *testing.T) {
	// A start angle of zero on a polygon runs the ball along its edge.
	e, err := NewEngine(squareTable(t), Euclidean, 0, 0.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	before := *e
	for range 3 {
		res := e.Step()
		diff(t, StepResult{Status: Stalled, Reason: Grazing}, res)
	}
	if *e != before {
		t.Errorf("stalled step changed the engine: got %+v, want %+v", *e, before)
	}
}

func TestEngineCurvedZeroAngle(t *testing.T) {
	tbl, err := FitTable(hexagon(), 3, DefaultScale)
	if err != nil {
		t.Fatal(err)
	}
	e0, err := NewEngine(tbl, Euclidean, 2, 0.3, 0)
	if err != nil {
		t.Fatal(err)
	}
	e1, err := NewEngine(tbl, Euclidean, 2, 0.3, minStartAngle)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, e1.Line(), e0.Line())
	if res := e0.Step(); res.Status != Moved {
		t.Errorf("got %v (%v), want the ball to move", res.Status, res.Reason)
	}
}

func TestEngineUninitializedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var e Engine
	e.Step()
}

func TestEngineCurvedReflection(t *testing.T) {
	poly := make(Polygon, 12)
	for i := range poly {
		th := 2 * math.Pi * float64(i) / 12
		poly[i] = Pt(4*math.Cos(th), 3*math.Sin(th))
	}
	tbl, err := FitTable(poly, 4, DefaultScale)
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(tbl, Euclidean, 0, 0.5, 70)
	if err != nil {
		t.Fatal(err)
	}
	if res := e.Step(); res.Status != Moved {
		t.Fatalf("first step: %v (%v)", res.Status, res.Reason)
	}
	for i := range 20 {
		in := e.Line().Direction()
		at := e.End()
		res := e.Step()
		if res.Status != Moved {
			t.Fatalf("step %d: %v (%v)", i, res.Status, res.Reason)
		}
		if _, d := tbl.Locate(e.End().Point); d > 1e-8 {
			t.Errorf("step %d: impact point %v is %g off the boundary", i, e.End().Point, d)
		}
		if !tbl.Contains(e.Start().Point.Midpoint(e.End().Point)) {
			t.Errorf("step %d: chord %v leaves the table", i, e.Line())
		}

		// The tangential component of the direction is kept, the normal
		// component is reversed.
		out := e.Line().Direction()
		db := tbl.Tangent(at)
		db = db.Mul(1 / db.Hypot())
		in = in.Mul(1 / in.Hypot())
		out = out.Mul(1 / out.Hypot())
		diff(t, db.Dot(in), db.Dot(out), cmpopts.EquateApprox(0, 1e-7))
		diff(t, db.Cross(in), -db.Cross(out), cmpopts.EquateApprox(0, 1e-7))
	}
}

func TestEngineHighOrderCurves(t *testing.T) {
	for _, order := range []int{MinOrder, 10, 17, MaxOrder} {
		tbl, err := FitTable(RegularPolygon(5), order, DefaultScale)
		if err != nil {
			t.Fatal(err)
		}
		for _, law := range []Law{Euclidean, Symplectic} {
			t.Run(fmt.Sprintf("%s/%d", law, order), func(t *testing.T) {
				e, err := NewEngine(tbl, law, 0, 0.37, 50)
				if err != nil {
					t.Fatal(err)
				}
				for i := range 200 {
					res := e.Step()
					if res.Status != Moved {
						t.Fatalf("step %d: %v (%v)", i, res.Status, res.Reason)
					}
					if e.Length() < 1e-6 {
						t.Fatalf("step %d: chord of length %g", i, e.Length())
					}
					if !tbl.Contains(e.Start().Point.Midpoint(e.End().Point)) {
						t.Fatalf("step %d: chord %v leaves the table", i, e.Line())
					}
				}
			})
		}
	}
}

func TestSymplecticSquare(t *testing.T) {
	tbl := squareTable(t)
	eu, err := NewEngine(tbl, Euclidean, 0, 0.5, 45)
	if err != nil {
		t.Fatal(err)
	}
	sy, err := NewEngine(tbl, Symplectic, 0, 0.5, 45)
	if err != nil {
		t.Fatal(err)
	}

	// The first symplectic step is a Euclidean step.
	eres := eu.Step()
	sres := sy.Step()
	diff(t, eu.End(), sy.End())
	diff(t, eu.Start(), sy.Start())
	diff(t, Pt(0, eres.Info.Y), sres.Info)

	want := []CurvePoint{
		{Point: Pt(0, 1), T: 0.5, Index: 2},
		{Point: Pt(-1, 0), T: 0.5, Index: 3},
		{Point: Pt(0, -1), T: 0.5, Index: 0},
	}
	for i, w := range want {
		res := sy.Step()
		if res.Status != Moved {
			t.Fatalf("step %d: %v (%v)", i, res.Status, res.Reason)
		}
		diff(t, Pt(math.Sqrt2, math.Sqrt2), res.Info, cmpopts.EquateApprox(0, 1e-12))
		diff(t, w, sy.End(), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestSymplecticParallelEdgesStall(t *testing.T) {
	e, err := NewEngine(squareTable(t), Symplectic, 0, 0.5, 90)
	if err != nil {
		t.Fatal(err)
	}
	res := e.Step()
	diff(t, StepResult{Status: Moved, Info: Pt(0, 2)}, res, cmpopts.EquateApprox(0, 1e-12))

	// The chord joins two parallel edges.
	before := *e
	res = e.Step()
	diff(t, StepResult{Status: Stalled, Reason: Grazing}, res)
	if *e != before {
		t.Errorf("stalled step changed the engine")
	}
}

func TestSymplecticCurved(t *testing.T) {
	tbl, err := FitTable(hexagon(), 3, DefaultScale)
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(tbl, Symplectic, 1, 0.25, 60)
	if err != nil {
		t.Fatal(err)
	}
	if res := e.Step(); res.Status != Moved {
		t.Fatalf("first step: %v (%v)", res.Status, res.Reason)
	}
	for i := range 10 {
		a, b := e.Start(), e.End()
		last := e.Length()
		res := e.Step()
		if res.Status != Moved {
			t.Fatalf("step %d: %v (%v)", i, res.Status, res.Reason)
		}
		c := e.End()
		diff(t, b, e.Start())
		diff(t, Pt(last, e.Length()), res.Info, cmpopts.EquateApprox(0, 1e-12))

		// AC is parallel to the tangent at B.
		ac := c.Point.Sub(a.Point)
		tb := tbl.Tangent(b)
		if s := ac.Cross(tb) / (ac.Hypot() * tb.Hypot()); math.Abs(s) > 1e-8 {
			t.Errorf("step %d: chord %v–%v not parallel to tangent %v at %v (sin %g)", i, a.Point, c.Point, tb, b.Point, s)
		}
	}
}

func TestAngleConversions(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{45, math.Pi / 4},
		{180, 0},
		{-45, 3 * math.Pi / 4},
		{225, math.Pi / 4},
	}
	for _, tt := range tests {
		diff(t, tt.want, radians(tt.deg), cmpopts.EquateApprox(0, 1e-12))
	}
	diff(t, 135.0, degrees(-math.Pi/4), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 45.0, degrees(5*math.Pi/4), cmpopts.EquateApprox(0, 1e-12))
}

func TestStatusString(t *testing.T) {
	diff(t, "moved", Moved.String())
	diff(t, "stalled", Stalled.String())
	diff(t, "grazing", Grazing.String())
	diff(t, "euclidean", Euclidean.String())
	diff(t, "symplectic", Symplectic.String())
}
