package billiards

import "fmt"

// DefaultColors are the colors assigned to the balls of a [Simulation], in
// turn.
var DefaultColors = []string{
	"#0095DD", "#000000", "#00ff00", "#ff0000", "#c0c0c0",
	"#000080", "#008000", "#ff00ff", "#808080", "#800000",
}

// SimulationConfig describes the balls of a [Simulation]. Ball i starts at
// Angle + i·AngleIncrement; all other settings are shared.
type SimulationConfig struct {
	Balls          int
	Law            Law
	Start          int
	Lambda         float64
	Angle          float64
	AngleIncrement float64
	SagittaFactor  float64
	HistoryDepth   int
	// Colors are assigned to the balls in turn. If empty, DefaultColors is
	// used.
	Colors []string
}

// DefaultSimulationConfig returns the configuration of a single Euclidean
// ball starting in the middle of the first edge at 45°.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Balls:          1,
		Law:            Euclidean,
		Lambda:         DefaultStartLambda,
		Angle:          45,
		AngleIncrement: DefaultAngleIncrement,
		HistoryDepth:   DefaultHistoryDepth,
	}
}

// Simulation is a set of balls sharing a table.
type Simulation struct {
	table *Table
	balls []*Ball
}

// NewSimulation places cfg.Balls balls on tbl.
func NewSimulation(tbl *Table, cfg SimulationConfig) (*Simulation, error) {
	colors := cfg.Colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	sim := &Simulation{table: tbl}
	for i := range cfg.Balls {
		b, err := NewBall(tbl, BallConfig{
			Law:           cfg.Law,
			Start:         cfg.Start,
			Lambda:        cfg.Lambda,
			Angle:         cfg.Angle + float64(i)*cfg.AngleIncrement,
			SagittaFactor: cfg.SagittaFactor,
			HistoryDepth:  cfg.HistoryDepth,
			Color:         colors[i%len(colors)],
		})
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		sim.balls = append(sim.balls, b)
	}
	return sim, nil
}

// Table returns the shared table.
func (sim *Simulation) Table() *Table { return sim.table }

// Balls returns the simulation's balls.
func (sim *Simulation) Balls() []*Ball { return sim.balls }

// Step steps every ball once and returns the results in ball order.
func (sim *Simulation) Step() []StepResult {
	out := make([]StepResult, len(sim.balls))
	for i, b := range sim.balls {
		out[i] = b.Step()
	}
	return out
}

// Move moves every ball by increment. See [Ball.Move].
func (sim *Simulation) Move(increment float64) {
	for _, b := range sim.balls {
		b.Move(increment)
	}
}

// Run runs every ball for up to n steps. See [Ball.Run].
func (sim *Simulation) Run(n int) []RunResult {
	out := make([]RunResult, len(sim.balls))
	for i, b := range sim.balls {
		out[i] = b.Run(n)
	}
	return out
}

// SetHistoryDepth changes the history capacity of every ball.
func (sim *Simulation) SetHistoryDepth(n int) {
	for _, b := range sim.balls {
		b.SetHistoryDepth(n)
	}
}
