package billiards

import "math"

// Epsilon is the relative tolerance used by every floating-point comparison
// in this package.
const Epsilon = 1e-10

// ApproxEqual reports whether a and b are equal within the relative tolerance
//
//	|a - b| ≤ max(1, |a|, |b|) · Epsilon
//
// Infinities are only equal to infinities of the same sign, and NaN is only
// equal to NaN.
func ApproxEqual(a, b float64) bool {
	switch {
	case math.IsInf(a, 1):
		return math.IsInf(b, 1)
	case math.IsInf(a, -1):
		return math.IsInf(b, -1)
	case math.IsNaN(a):
		return math.IsNaN(b)
	}
	eps := max(1, math.Abs(a), math.Abs(b)) * Epsilon
	return math.Abs(a-b) <= eps
}

// approxZero reports whether v is zero within the tolerance of [ApproxEqual].
func approxZero(v float64) bool {
	return ApproxEqual(v, 0)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clamp01(t float64) float64 {
	return max(0, min(1, t))
}

// inUnitInterval reports whether t lies in [0, 1], allowing for the tolerance
// of [ApproxEqual] at both ends.
func inUnitInterval(t float64) bool {
	return (t >= 0 || approxZero(t)) && (t <= 1 || ApproxEqual(t, 1))
}
