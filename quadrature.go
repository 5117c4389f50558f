package billiards

// Closed Newton–Cotes weights and factors, indexed by order. The rule of order
// n samples n+1 equidistant points with spacing h and evaluates to
// h · factor · Σ w_i f(x_i).
var newtonCotesRules = [...]struct {
	factor  float64
	weights []float64
}{
	1: {1.0 / 2.0, []float64{1, 1}},
	2: {1.0 / 3.0, []float64{1, 4, 1}},
	3: {3.0 / 8.0, []float64{1, 3, 3, 1}},
	4: {2.0 / 45.0, []float64{7, 32, 12, 32, 7}},
}

// Simpson integrates f over [a, b] with Simpson's rule on a single interval.
func Simpson(a, b float64, f func(float64) float64) float64 {
	return (b - a) / 6 * (f(a) + 4*f((a+b)/2) + f(b))
}

// NewtonCotes integrates f over [a, b] by splitting the range into equal
// subintervals and applying the closed Newton–Cotes rule of the given order
// to each: 1 is the trapezoidal rule, 2 Simpson's rule, 3 the 3/8 rule and 4
// Boole's rule. order is clamped to [1, 4] and intervals to [1, 10].
func NewtonCotes(a, b float64, order, intervals int, f func(float64) float64) float64 {
	order = max(1, min(4, order))
	intervals = max(1, min(10, intervals))
	rule := newtonCotesRules[order]

	var sum float64
	width := (b - a) / float64(intervals)
	h := width / float64(order)
	for k := range intervals {
		x0 := a + float64(k)*width
		var v float64
		for i, w := range rule.weights {
			v += w * f(x0+float64(i)*h)
		}
		sum += h * rule.factor * v
	}
	return sum
}
