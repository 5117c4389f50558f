package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"honnef.co/go/billiards"
)

// Scenario describes a table and the balls to run on it.
type Scenario struct {
	// Shape names one of the example boundaries in billiards.Shapes. It is
	// ignored if Vertices is set.
	Shape    string       `json:"shape"`
	Vertices [][2]float64 `json:"vertices"`

	// Bezier replaces the polygon with a fitted Bézier curve of the given
	// order and scale.
	Bezier bool    `json:"bezier"`
	Order  int     `json:"order"`
	Scale  float64 `json:"scale"`

	// Law is "euclidean" or "symplectic".
	Law            string   `json:"law"`
	Balls          int      `json:"balls"`
	Start          int      `json:"start"`
	Lambda         float64  `json:"lambda"`
	Angle          float64  `json:"angle"`
	AngleIncrement float64  `json:"angle_increment"`
	Sagitta        float64  `json:"sagitta"`
	History        int      `json:"history"`
	Steps          int      `json:"steps"`
	Colors         []string `json:"colors"`
}

// DefaultScenario returns the scenario used for fields missing from the
// input.
func DefaultScenario() Scenario {
	cfg := billiards.DefaultSimulationConfig()
	return Scenario{
		Shape:          "square",
		Order:          3,
		Scale:          billiards.DefaultScale,
		Law:            "euclidean",
		Balls:          cfg.Balls,
		Start:          cfg.Start,
		Lambda:         cfg.Lambda,
		Angle:          cfg.Angle,
		AngleIncrement: cfg.AngleIncrement,
		History:        cfg.HistoryDepth,
		Steps:          100,
		Colors:         slices.Clone(billiards.DefaultColors),
	}
}

// ReadScenario decodes a scenario from r, starting from DefaultScenario.
func ReadScenario(r io.Reader) (Scenario, error) {
	s := DefaultScenario()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("decoding scenario: %w", err)
	}
	return s, nil
}

func (s Scenario) law() (billiards.Law, error) {
	switch strings.ToLower(s.Law) {
	case "", "euclidean":
		return billiards.Euclidean, nil
	case "symplectic":
		return billiards.Symplectic, nil
	default:
		return nil, fmt.Errorf("unknown law %q", s.Law)
	}
}

// Polygon returns the scenario's boundary polygon.
func (s Scenario) Polygon() (billiards.Polygon, error) {
	if len(s.Vertices) > 0 {
		poly := make(billiards.Polygon, len(s.Vertices))
		for i, v := range s.Vertices {
			poly[i] = billiards.Pt(v[0], v[1])
		}
		return poly, nil
	}
	shape, ok := billiards.Shapes[s.Shape]
	if !ok {
		names := make([]string, 0, len(billiards.Shapes))
		for name := range billiards.Shapes {
			names = append(names, name)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("unknown shape %q, want one of %s", s.Shape, strings.Join(names, ", "))
	}
	return shape(), nil
}

// Table builds the scenario's table.
func (s Scenario) Table() (*billiards.Table, error) {
	poly, err := s.Polygon()
	if err != nil {
		return nil, err
	}
	if s.Bezier {
		return billiards.FitTable(poly, s.Order, s.Scale)
	}
	return billiards.NewTable(poly, nil)
}

// Simulation builds the scenario's table and places its balls on it.
func (s Scenario) Simulation() (*billiards.Simulation, error) {
	law, err := s.law()
	if err != nil {
		return nil, err
	}
	if s.Balls < 1 {
		return nil, fmt.Errorf("need at least one ball, got %d", s.Balls)
	}
	tbl, err := s.Table()
	if err != nil {
		return nil, err
	}
	return billiards.NewSimulation(tbl, billiards.SimulationConfig{
		Balls:          s.Balls,
		Law:            law,
		Start:          s.Start,
		Lambda:         s.Lambda,
		Angle:          s.Angle,
		AngleIncrement: s.AngleIncrement,
		SagittaFactor:  s.Sagitta,
		HistoryDepth:   s.History,
		Colors:         s.Colors,
	})
}

// Report is the result of running a scenario.
type Report struct {
	Law   string       `json:"law"`
	Table string       `json:"table"`
	Balls []BallReport `json:"balls"`
}

type BallReport struct {
	Color string `json:"color"`
	// Info holds the info point of every step, as (x, y) pairs.
	Info   [][2]float64 `json:"info"`
	Period int          `json:"period,omitempty"`
	Stall  string       `json:"stall,omitempty"`
	// End is the impact point the ball reached last.
	End [2]float64 `json:"end"`
}

// Run runs every ball of sim for up to steps reflections.
func Run(sim *billiards.Simulation, steps int) Report {
	rep := Report{Table: sim.Table().String()}
	results := sim.Run(steps)
	for i, b := range sim.Balls() {
		if i == 0 {
			rep.Law = b.Engine().Law().String()
		}
		res := results[i]
		br := BallReport{
			Color:  b.Color(),
			Info:   make([][2]float64, len(res.Info)),
			Period: res.Period,
		}
		for j, pt := range res.Info {
			br.Info[j] = [2]float64{pt.X, pt.Y}
		}
		if res.Stall != nil {
			br.Stall = res.Stall.Reason.String()
		}
		end := b.Engine().End().Point
		br.End = [2]float64{end.X, end.Y}
		rep.Balls = append(rep.Balls, br)
	}
	return rep
}
