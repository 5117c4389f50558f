package billiards

import "iter"

// DefaultHistoryDepth is the default capacity of a ball's [History].
const DefaultHistoryDepth = 100

// History is a bounded list of past impact points, newest first. Adding a
// point that exactly equals the newest one has no effect.
//
// The zero value is a history with a capacity of zero, which keeps nothing.
type History struct {
	pts      []Point
	maxDepth int
}

// NewHistory returns an empty history that holds at most maxDepth points.
// Negative capacities are treated as zero.
func NewHistory(maxDepth int) *History {
	maxDepth = max(0, maxDepth)
	return &History{
		pts:      make([]Point, 0, min(maxDepth, DefaultHistoryDepth)),
		maxDepth: maxDepth,
	}
}

// Add inserts pt as the newest point, dropping the oldest point if the
// history is full.
func (h *History) Add(pt Point) {
	if len(h.pts) > 0 && h.pts[0] == pt {
		return
	}
	if h.maxDepth == 0 {
		return
	}
	if len(h.pts) < h.maxDepth {
		h.pts = append(h.pts, Point{})
	}
	copy(h.pts[1:], h.pts)
	h.pts[0] = pt
}

// At returns the i-th newest point. It reports false if there is no such
// point.
func (h *History) At(i int) (Point, bool) {
	if i < 0 || i >= len(h.pts) {
		return Point{}, false
	}
	return h.pts[i], true
}

// Len returns the number of points in the history.
func (h *History) Len() int { return len(h.pts) }

// MaxDepth returns the capacity of the history.
func (h *History) MaxDepth() int { return h.maxDepth }

// SetMaxDepth changes the capacity of the history, dropping the oldest
// points if it holds more than the new capacity.
func (h *History) SetMaxDepth(n int) {
	n = max(0, n)
	if len(h.pts) > n {
		clear(h.pts[n:])
		h.pts = h.pts[:n]
	}
	h.maxDepth = n
}

// Clear removes all points.
func (h *History) Clear() {
	h.pts = h.pts[:0]
}

// All iterates over the points, newest first.
func (h *History) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range h.pts {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Points returns a copy of the points, newest first.
func (h *History) Points() []Point {
	out := make([]Point, len(h.pts))
	copy(out, h.pts)
	return out
}
