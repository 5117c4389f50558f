package billiards_test

import (
	"fmt"
	"log"
	"math"

	"honnef.co/go/billiards"
)

// round rounds to two decimals and turns negative zero into zero.
func round(v float64) float64 {
	return math.Round(v*100)/100 + 0
}

func ExampleEngine() {
	square := billiards.Polygon{
		billiards.Pt(-1, -1),
		billiards.Pt(1, -1),
		billiards.Pt(1, 1),
		billiards.Pt(-1, 1),
	}
	tbl, err := billiards.NewTable(square, nil)
	if err != nil {
		log.Fatal(err)
	}
	// Start in the middle of the bottom edge, at 45°.
	e, err := billiards.NewEngine(tbl, billiards.Euclidean, 0, 0.5, 45)
	if err != nil {
		log.Fatal(err)
	}
	for range 4 {
		res := e.Step()
		end := e.End()
		fmt.Printf("edge %d, t=%.2f: (%.2f, %.2f), angle %.0f°, length %.4f\n",
			end.Index, end.T, round(end.Point.X), round(end.Point.Y), res.Info.X, res.Info.Y)
	}

	// Output:
	// edge 1, t=0.50: (1.00, 0.00), angle 135°, length 1.4142
	// edge 2, t=0.50: (0.00, 1.00), angle 135°, length 1.4142
	// edge 3, t=0.50: (-1.00, 0.00), angle 135°, length 1.4142
	// edge 0, t=0.50: (0.00, -1.00), angle 135°, length 1.4142
}

func ExampleBall_Run() {
	tbl, err := billiards.NewTable(billiards.Rectangle(), nil)
	if err != nil {
		log.Fatal(err)
	}
	ball, err := billiards.NewBall(tbl, billiards.BallConfig{
		Law:    billiards.Symplectic,
		Start:  3,
		Lambda: 0.5,
		Angle:  45,
	})
	if err != nil {
		log.Fatal(err)
	}
	res := ball.Run(100)
	fmt.Println("period:", res.Period)

	// Output:
	// period: 4
}

func ExampleRealRoots() {
	// x³ - 6x² + 11x - 6 = (x - 1)(x - 2)(x - 3)
	for _, r := range billiards.RealRoots([]float64{-6, 11, -6, 1}) {
		fmt.Printf("%.4f\n", r)
	}

	// Output:
	// 1.0000
	// 2.0000
	// 3.0000
}

func ExampleCircleArc() {
	arc := billiards.NewCircleArc(billiards.Pt(0, 0), billiards.Pt(2, 0), 1)
	fmt.Printf("center %v, radius %.1f, length %.4f\n", arc.Center, arc.Radius, arc.ArcLength())

	// Output:
	// center (1, 0), radius 1.0, length 3.1416
}

func ExampleFitPolygon() {
	curve := billiards.FitPolygon(billiards.RegularPolygon(6), 5, billiards.DefaultScale, true)
	fmt.Println(len(curve), "segments of order", curve[0].Order())
	fmt.Println(curve.Contains(billiards.Pt(0, 0)), curve.Contains(billiards.Pt(2, 0)))

	// Output:
	// 6 segments of order 5
	// true false
}
