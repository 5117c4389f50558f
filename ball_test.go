package billiards

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBallStepHistory(t *testing.T) {
	b, err := NewBall(squareTable(t), BallConfig{Lambda: 0.5, Angle: 45, HistoryDepth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if b.Engine().Law() != Euclidean {
		t.Errorf("default law is %v, want euclidean", b.Engine().Law())
	}
	for range 3 {
		if res := b.Step(); res.Status != Moved {
			t.Fatalf("got %v (%v)", res.Status, res.Reason)
		}
	}
	// The impact point the ball travels to isn't part of the history yet.
	diff(t, []Point{Pt(0, 1), Pt(1, 0)}, b.History().Points(), cmpopts.EquateApprox(0, 1e-12))

	b.SetHistoryDepth(1)
	diff(t, []Point{Pt(0, 1)}, b.History().Points(), cmpopts.EquateApprox(0, 1e-12))
}

func TestBallMove(t *testing.T) {
	b, err := NewBall(squareTable(t), BallConfig{Lambda: 0.5, Angle: 45, HistoryDepth: 10})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, -1), b.Position())

	// Without a chord, moving steps.
	if _, stepped := b.Move(0.1); !stepped {
		t.Fatal("first move didn't step")
	}
	diff(t, Pt(0, -1), b.Position(), cmpopts.EquateApprox(0, 1e-12))

	if _, stepped := b.Move(math.Sqrt2 / 4); stepped {
		t.Fatal("move stepped in the middle of the chord")
	}
	diff(t, Pt(0.25, -0.75), b.Position(), cmpopts.EquateApprox(0, 1e-12))

	b.Move(math.Sqrt2)
	diff(t, Pt(1, 0), b.Position(), cmpopts.EquateApprox(0, 1e-12))

	res, stepped := b.Move(0.1)
	if !stepped || res.Status != Moved {
		t.Fatalf("got %v, %t, want a step", res.Status, stepped)
	}
	diff(t, Pt(1, 0), b.Position(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Line{Pt(1, 0), Pt(0, 1)}, b.Engine().Line(), cmpopts.EquateApprox(0, 1e-12))
}

func TestBallSagitta(t *testing.T) {
	tbl := squareTable(t)
	semicircle := math.Pi * math.Sqrt2 / 2

	eu, err := NewBall(tbl, BallConfig{Lambda: 0.5, Angle: 45, SagittaFactor: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, MaxSagittaFactor, eu.SagittaFactor())
	res := eu.Step()
	diff(t, Pt(135, semicircle), res.Info, cmpopts.EquateApprox(0, 1e-9))

	sy, err := NewBall(tbl, BallConfig{Law: Symplectic, Lambda: 0.5, Angle: 45, SagittaFactor: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	res = sy.Step()
	diff(t, Pt(0, semicircle), res.Info, cmpopts.EquateApprox(0, 1e-9))
	res = sy.Step()
	diff(t, Pt(semicircle, semicircle), res.Info, cmpopts.EquateApprox(0, 1e-9))

	cur, last := sy.Arc()
	diff(t, Pt(1, 0), cur.P0, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0, 1), cur.P1, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0, -1), last.P0, cmpopts.EquateApprox(0, 1e-12))
}

func TestBallSagittaPosition(t *testing.T) {
	b, err := NewBall(squareTable(t), BallConfig{Lambda: 0.5, Angle: 45, SagittaFactor: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	b.Step()
	b.Move(math.Sqrt2 / 4)
	arc, _ := b.Arc()
	diff(t, Pt(0.25, -0.75), b.ChordPosition(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, arc.Radius, b.Position().Distance(arc.Center), cmpopts.EquateApprox(0, 1e-12))
	if b.Position().ApproxEqual(b.ChordPosition()) {
		t.Error("position on the arc equals the position on the chord")
	}
}

func TestBallRunPeriod(t *testing.T) {
	tbl := squareTable(t)
	tests := []struct {
		angle  float64
		law    Law
		period int
	}{
		{45, Euclidean, 4},
		{90, Euclidean, 2},
		{45, Symplectic, 4},
	}
	for _, tt := range tests {
		b, err := NewBall(tbl, BallConfig{Law: tt.law, Lambda: 0.5, Angle: tt.angle})
		if err != nil {
			t.Fatal(err)
		}
		res := b.Run(100)
		if res.Stall != nil {
			t.Errorf("%v %g°: stalled with %v", tt.law, tt.angle, res.Stall.Reason)
		}
		if res.Period != tt.period {
			t.Errorf("%v %g°: got period %d, want %d", tt.law, tt.angle, res.Period, tt.period)
		}
		if len(res.Info) != tt.period+1 {
			t.Errorf("%v %g°: got %d info points, want %d", tt.law, tt.angle, len(res.Info), tt.period+1)
		}
	}
}

func TestBallRunStall(t *testing.T) {
	b, err := NewBall(squareTable(t), BallConfig{Law: Symplectic, Lambda: 0.5, Angle: 90})
	if err != nil {
		t.Fatal(err)
	}
	res := b.Run(10)
	if res.Stall == nil || res.Stall.Reason != Grazing {
		t.Fatalf("got stall %v, want grazing", res.Stall)
	}
	diff(t, []Point{Pt(0, 2)}, res.Info, cmpopts.EquateApprox(0, 1e-12))
	if res.Period != 0 {
		t.Errorf("got period %d, want 0", res.Period)
	}
}

func TestBallRunAperiodic(t *testing.T) {
	b, err := NewBall(squareTable(t), BallConfig{Lambda: 0.5, Angle: 30})
	if err != nil {
		t.Fatal(err)
	}
	res := b.Run(5)
	if res.Stall != nil {
		t.Fatalf("stalled with %v", res.Stall.Reason)
	}
	if len(res.Info) != 5 {
		t.Errorf("got %d info points, want 5", len(res.Info))
	}
}
