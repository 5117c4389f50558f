package billiards

import (
	"fmt"
	"math"
)

// Defaults of the start locator.
const (
	DefaultStartLambda = 0.5
	// DefaultAngleIncrement is the difference in start angle, in degrees,
	// between consecutive balls of a [Simulation].
	DefaultAngleIncrement = 5.0
)

// minStartAngle replaces a start angle of zero on curved tables, in degrees.
const minStartAngle = 1.0

// Status is the outcome of a step.
type Status int

const (
	// The ball moved to a new impact point.
	Moved Status = iota
	// The ball didn't move; the engine's state is unchanged.
	Stalled
)

func (s Status) String() string {
	switch s {
	case Moved:
		return "moved"
	case Stalled:
		return "stalled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StallReason explains why a step stalled.
type StallReason int

const (
	// The step didn't stall.
	NoStall StallReason = iota
	// The reflected ray doesn't meet the boundary anywhere else.
	NoIntersection
	// The ray meets the boundary, but none of the points can be reached
	// without leaving the table.
	NoCandidate
	// The ray runs along the boundary.
	Grazing
)

func (r StallReason) String() string {
	switch r {
	case NoStall:
		return "none"
	case NoIntersection:
		return "no intersection"
	case NoCandidate:
		return "no candidate"
	case Grazing:
		return "grazing"
	default:
		return fmt.Sprintf("StallReason(%d)", int(r))
	}
}

// StepResult describes the outcome of [Engine.Step].
type StepResult struct {
	Status Status
	Reason StallReason
	// Info is the law-dependent info point of the step. See [Euclidean] and
	// [Symplectic]. It is the zero point for stalled steps.
	Info Point
}

// Engine computes the trajectory of a single ball. The ball always travels
// along the chord from Start to End; every step reflects it at End and moves
// it to the next impact point.
//
// An Engine must be created with [NewEngine]. Engines sharing a [Table] may
// be used concurrently, but a single Engine must not.
type Engine struct {
	table *Table
	law   Law

	start CurvePoint
	end   CurvePoint
	line  Line

	// Whether the next symplectic step is the first one.
	first bool
}

// NewEngine returns an engine for a ball that starts at parameter lambda of
// edge or segment start and leaves the boundary at angle degrees, measured
// against the tangent. lambda is clamped to [0, 1].
//
// On curved tables, an angle of zero is replaced with a small non-zero angle,
// as the ball would otherwise never leave the boundary.
func NewEngine(table *Table, law Law, start int, lambda, angle float64) (*Engine, error) {
	e := &Engine{table: table, law: law}
	if err := e.Init(start, lambda, angle); err != nil {
		return nil, err
	}
	return e, nil
}

// Init resets the engine to a new start position and angle. It accepts the
// same arguments as [NewEngine]. On error, the engine is left unchanged.
func (e *Engine) Init(start int, lambda, angle float64) error {
	tbl := e.table
	if start < 0 || start >= tbl.Len() {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrInvalidStart, start, tbl.Len())
	}
	lambda = clamp01(lambda)
	if math.IsNaN(lambda) || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return fmt.Errorf("%w: lambda %v, angle %v", ErrInvalidStart, lambda, angle)
	}

	cp := CurvePoint{Point: tbl.Eval(start, lambda), T: lambda, Index: start}
	rad := radians(angle)
	if approxZero(rad) {
		if tbl.IsCurved() {
			Logger().Debug("substituting start angle", "angle", angle, "substitute", minStartAngle)
			rad = radians(minStartAngle)
		} else {
			e.line = tbl.Polygon.Edge(start)
		}
	}
	if !approxZero(rad) {
		dir := tbl.Tangent(cp).Rotate(-rad)
		e.line = Line{cp.Point, cp.Point.Translate(dir)}
	}
	e.start = cp
	e.end = cp
	e.first = true
	return nil
}

// Step moves the ball to its next impact point according to the engine's
// law. If no impact point can be found, the step stalls and the engine's
// state doesn't change.
//
// Step panics if the engine wasn't created with [NewEngine].
func (e *Engine) Step() StepResult {
	if e.table == nil || e.law == nil {
		panic("billiards: Step called on uninitialized Engine")
	}
	return e.law.step(e)
}

// Start returns the impact point the ball last left.
func (e *Engine) Start() CurvePoint { return e.start }

// End returns the impact point the ball travels to. Before the first step,
// this is the start position.
func (e *Engine) End() CurvePoint { return e.end }

// Line returns the line the ball travels along.
func (e *Engine) Line() Line { return e.line }

// Law returns the engine's reflection law.
func (e *Engine) Law() Law { return e.law }

// Table returns the table the ball moves on.
func (e *Engine) Table() *Table { return e.table }

// Length returns the length of the current chord.
func (e *Engine) Length() float64 {
	return e.start.Point.Distance(e.end.Point)
}

func (e *Engine) commit(next Intersection) {
	e.start = e.end
	e.end = CurvePoint{Point: next.Point, T: next.T, Index: next.Index}
	e.line = Line{e.start.Point, e.end.Point}
}

func (e *Engine) stall(reason StallReason) StepResult {
	Logger().Debug("step stalled",
		"reason", reason,
		"law", e.law,
		"point", e.end.Point,
		"index", e.end.Index)
	return StepResult{Status: Stalled, Reason: reason}
}
