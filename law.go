package billiards

import (
	"cmp"
	"math"
	"slices"
)

// A Law is a reflection law, deciding where a ball goes after it hits the
// boundary. The only laws are [Euclidean] and [Symplectic].
type Law interface {
	step(e *Engine) StepResult
	String() string
}

var (
	// Euclidean is classical billiards: the angle of reflection equals the
	// angle of incidence, measured against the tangent at the impact point.
	// The info point of a step is (angle of incidence in degrees, length of
	// the new chord).
	Euclidean Law = euclidean{}

	// Symplectic is symplectic billiards: given the last two impact points A
	// and B, the next impact point C is chosen so that the chord AC is
	// parallel to the tangent at B. The first step, which has no A yet, is a
	// Euclidean step. The info point of a step is (length of the previous
	// chord, length of the new chord).
	Symplectic Law = symplectic{}
)

type euclidean struct{}

func (euclidean) String() string { return "euclidean" }

func (euclidean) step(e *Engine) StepResult {
	tbl := e.table
	at := e.end
	db := tbl.Tangent(at)
	dl := e.line.Direction()

	if dl.Parallel(db) {
		// Moving along the boundary.
		return e.stall(Grazing)
	}

	angle, dir := 90.0, dl
	if !dl.Orthogonal(db) {
		angle = degrees(math.Atan(db.Cross(dl) / db.Dot(dl)))
		dir = dl.Reflect(db)
	}

	ray := Line{at.Point, at.Point.Translate(dir)}
	cands := tbl.Intersections(ray, at.Point, at.Index)
	if len(cands) == 0 {
		return e.stall(NoIntersection)
	}
	slices.SortFunc(cands, func(a, b Intersection) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	next, ok := cands[0], len(cands) == 1
	if !ok {
		for _, c := range cands {
			if tbl.SegmentInside(at.Point, c.Point) {
				next, ok = c, true
				break
			}
		}
	}
	if !ok {
		return e.stall(NoCandidate)
	}

	e.commit(next)
	return StepResult{Status: Moved, Info: Pt(angle, e.Length())}
}

type symplectic struct{}

func (symplectic) String() string { return "symplectic" }

func (symplectic) step(e *Engine) StepResult {
	if e.first {
		res := Euclidean.step(e)
		if res.Status == Moved {
			e.first = false
			res.Info = Pt(0, res.Info.Y)
		}
		return res
	}

	tbl := e.table
	a, b := e.start, e.end
	if !tbl.IsCurved() {
		if tbl.Polygon.Edge(a.Index).Direction().Parallel(tbl.Polygon.Edge(b.Index).Direction()) {
			// The chord through A would run along A's edge.
			return e.stall(Grazing)
		}
	}

	line := Line{a.Point, a.Point.Translate(tbl.Tangent(b))}
	skip := -1
	if !tbl.IsCurved() {
		skip = b.Index
	}
	cands := tbl.Intersections(line, b.Point, skip)
	if len(cands) == 0 {
		return e.stall(NoIntersection)
	}
	slices.SortFunc(cands, func(x, y Intersection) int {
		return cmp.Compare(y.Distance, x.Distance)
	})

	next, ok := cands[0], len(cands) == 1
	if !ok {
		for _, c := range cands {
			if !c.Point.ApproxEqual(a.Point) {
				next, ok = c, true
				break
			}
		}
	}
	if !ok {
		return e.stall(NoCandidate)
	}

	last := e.Length()
	e.commit(next)
	return StepResult{Status: Moved, Info: Pt(last, e.Length())}
}

// degrees converts an angle in radians to degrees in [0, 180).
func degrees(rad float64) float64 {
	rad = math.Mod(rad, math.Pi)
	if rad < 0 {
		rad += math.Pi
	}
	return rad * 180 / math.Pi
}

// radians converts an angle in degrees to radians in [0, π).
func radians(deg float64) float64 {
	rad := math.Mod(deg, 180) * math.Pi / 180
	if rad < 0 {
		rad += math.Pi
	}
	return rad
}
