package billiards

// MaxSagittaFactor bounds the sagitta factor of a [Ball] in both directions.
const MaxSagittaFactor = 0.5

// BallConfig describes the start of a [Ball].
type BallConfig struct {
	Law Law
	// Start is the edge or segment the ball starts on and Lambda its position
	// on it.
	Start  int
	Lambda float64
	// Angle is the start angle in degrees.
	Angle float64
	// SagittaFactor, if not zero, makes the ball travel along circular arcs
	// instead of straight chords. The sagitta of every arc is the length of
	// its chord times SagittaFactor, which is clamped to ±MaxSagittaFactor.
	SagittaFactor float64
	HistoryDepth  int
	// Color is an opaque color name for use by renderers.
	Color string
}

// Ball is a billiard ball moving on a [Table]. It combines an [Engine] with a
// history of impact points and the state needed to animate the ball along
// its current chord or arc.
type Ball struct {
	engine  *Engine
	history *History
	color   string

	sagitta float64
	arc     CircleArc
	lastArc CircleArc

	// Position on the current chord, in [0, 1] once the chord is known.
	t        float64
	distance float64
	pos      Point
}

// NewBall returns a ball on tbl. See [NewEngine] for the errors it returns.
func NewBall(tbl *Table, cfg BallConfig) (*Ball, error) {
	law := cfg.Law
	if law == nil {
		law = Euclidean
	}
	e, err := NewEngine(tbl, law, cfg.Start, cfg.Lambda, cfg.Angle)
	if err != nil {
		return nil, err
	}
	return &Ball{
		engine:  e,
		history: NewHistory(cfg.HistoryDepth),
		color:   cfg.Color,
		sagitta: max(-MaxSagittaFactor, min(MaxSagittaFactor, cfg.SagittaFactor)),
		pos:     e.End().Point,
	}, nil
}

// Step moves the ball to its next impact point, recording the current one in
// the history. With a sagitta factor, the second coordinate of the info
// point is the length of the new arc, and for symplectic balls the first
// coordinate is the length of the previous arc.
func (b *Ball) Step() StepResult {
	b.history.Add(b.engine.End().Point)
	res := b.engine.Step()
	if res.Status != Moved {
		return res
	}
	start, end := b.engine.Start().Point, b.engine.End().Point
	b.t = 0
	b.pos = start
	b.distance = start.Distance(end)
	if b.sagitta != 0 {
		b.lastArc = b.arc
		b.arc = NewCircleArc(start, end, b.distance*b.sagitta)
		if b.engine.Law() == Symplectic {
			res.Info = Pt(b.lastArc.ArcLength(), b.arc.ArcLength())
		} else {
			res.Info = Pt(res.Info.X, b.arc.ArcLength())
		}
	}
	return res
}

// Move advances the ball by increment along its chord. Once the chord is
// exhausted, or if there is none yet, the ball is stepped instead; the
// second return value reports whether that happened.
func (b *Ball) Move(increment float64) (StepResult, bool) {
	if approxZero(b.distance) || b.t >= 1 {
		return b.Step(), true
	}
	dt := increment / b.distance
	if dt == 0 {
		return b.Step(), true
	}
	b.t += dt
	b.pos = b.engine.Start().Point.Lerp(b.engine.End().Point, min(b.t, 1))
	return StepResult{Status: Moved}, false
}

// Position returns the ball's current position. With a sagitta factor, this
// is the position on the arc.
func (b *Ball) Position() Point {
	if b.sagitta != 0 {
		return b.arc.Project(b.pos)
	}
	return b.pos
}

// ChordPosition returns the ball's current position on its chord.
func (b *Ball) ChordPosition() Point { return b.pos }

// Engine returns the ball's engine.
func (b *Ball) Engine() *Engine { return b.engine }

// History returns the ball's impact history.
func (b *Ball) History() *History { return b.history }

// Color returns the color the ball was configured with.
func (b *Ball) Color() string { return b.color }

// SagittaFactor returns the clamped sagitta factor.
func (b *Ball) SagittaFactor() float64 { return b.sagitta }

// Arc returns the arc the ball currently travels along, and the arc before
// it. Both are flat if the ball has no sagitta factor.
func (b *Ball) Arc() (cur, last CircleArc) { return b.arc, b.lastArc }

// SetHistoryDepth changes the capacity of the ball's history.
func (b *Ball) SetHistoryDepth(n int) { b.history.SetMaxDepth(n) }

// RunResult is the outcome of [Ball.Run].
type RunResult struct {
	// Info holds the info point of every step that moved the ball.
	Info []Point
	// Period is the number of steps after which the trajectory repeats, or 0
	// if no repetition was found.
	Period int
	// Stall is the result of the step that stalled the run, if any.
	Stall *StepResult
}

// Run steps the ball up to n times, collecting info points, and stops early
// when the trajectory returns to the first chord it traveled.
func (b *Ball) Run(n int) RunResult {
	var out RunResult
	var first Line
	for j := range n {
		res := b.Step()
		if res.Status != Moved {
			out.Stall = &res
			break
		}
		out.Info = append(out.Info, res.Info)
		cur := b.engine.Line()
		if j == 0 {
			first = cur
			continue
		}
		if cur.P0.ApproxEqual(first.P0) && cur.P1.ApproxEqual(first.P1) {
			out.Period = j
			break
		}
	}
	return out
}
