package billiards

import (
	"math"
	"math/cmplx"
	"slices"
)

// MaxRootIterations bounds the number of iterations spent on finding a single
// root in [PolynomialRoots], per starting point.
const MaxRootIterations = 50

// Polynomials are represented by their coefficients in ascending order of
// power, i.e. c[0] + c[1] x + c[2] x² + …

// Horner evaluates the polynomial at t.
func Horner(coeffs []float64, t float64) float64 {
	var v float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*t + coeffs[i]
	}
	return v
}

func hornerComplex(coeffs []float64, x complex128) complex128 {
	var v complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + complex(coeffs[i], 0)
	}
	return v
}

// PolyMul returns the product of two polynomials.
func PolyMul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return out
}

// PolyDeriv returns the derivative of the polynomial.
func PolyDeriv(coeffs []float64) []float64 {
	if len(coeffs) < 2 {
		return nil
	}
	out := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		out[i-1] = float64(i) * coeffs[i]
	}
	return out
}

// Deflate divides the polynomial by (x − root) and returns the quotient. The
// remainder is discarded.
func Deflate(coeffs []float64, root float64) []float64 {
	n := len(coeffs) - 1
	if n < 1 {
		return nil
	}
	q := make([]float64, n)
	q[n-1] = coeffs[n]
	for i := n - 1; i >= 1; i-- {
		q[i-1] = coeffs[i] + root*q[i]
	}
	return q
}

// deflateQuadratic divides the polynomial by x² + p x + s and returns the
// quotient. The remainder is discarded.
func deflateQuadratic(coeffs []float64, p, s float64) []float64 {
	n := len(coeffs) - 1
	m := n - 2
	if m < 0 {
		return nil
	}
	q := make([]float64, m+1)
	for k := n; k >= 2; k-- {
		v := coeffs[k]
		if k-1 <= m {
			v -= p * q[k-1]
		}
		if k <= m {
			v -= s * q[k]
		}
		q[k-2] = v
	}
	return q
}

// trimPoly drops leading coefficients that vanish relative to the largest
// coefficient.
func trimPoly(coeffs []float64) []float64 {
	var scale float64
	for _, c := range coeffs {
		scale = max(scale, math.Abs(c))
	}
	if scale == 0 {
		return nil
	}
	n := len(coeffs)
	for n > 0 && approxZero(coeffs[n-1]/scale) {
		n--
	}
	return coeffs[:n]
}

// IsReal reports whether the imaginary part of a root vanishes within the
// tolerance of [ApproxEqual].
func IsReal(root complex128) bool {
	return approxZero(imag(root))
}

// quadraticRoots solves a x² + b x + c = 0 with a ≠ 0. Complex roots are
// returned as a conjugate pair.
func quadraticRoots(a, b, c float64) ([2]complex128, int) {
	disc := b*b - 4*a*c
	if disc < 0 && !approxZero(disc/max(b*b, math.Abs(4*a*c))) {
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * math.Abs(a))
		return [2]complex128{complex(re, im), complex(re, -im)}, 2
	}
	sq := math.Sqrt(max(disc, 0))
	// See https://math.stackexchange.com/questions/866331
	q := -0.5 * (b + math.Copysign(sq, b))
	if q == 0 {
		// b and c are both zero.
		return [2]complex128{0, 0}, 2
	}
	r1 := q / a
	r2 := c / q
	return [2]complex128{complex(r1, 0), complex(r2, 0)}, 2
}

// CubicRoots finds the roots of a x³ + b x² + c x + d = 0, real and
// complex. Note that, unlike the other polynomial functions, the coefficients
// are given with the highest power first.
//
// As leading coefficients vanish, the equation is solved as a quadratic,
// linear or constant equation instead. A constant equation has no roots. The
// second return value states how many roots were found. Roots whose
// imaginary part vanishes, as reported by [IsReal], are usable real roots.
func CubicRoots(a, b, c, d float64) ([3]complex128, int) {
	scale := max(math.Abs(a), math.Abs(b), math.Abs(c), math.Abs(d))
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return [3]complex128{}, 0
	}
	a, b, c, d = a/scale, b/scale, c/scale, d/scale

	if approxZero(a) {
		if approxZero(b) {
			if approxZero(c) {
				return [3]complex128{}, 0
			}
			return [3]complex128{complex(-d/c, 0)}, 1
		}
		roots, n := quadraticRoots(b, c, d)
		return [3]complex128{roots[0], roots[1]}, n
	}

	// Depressed cubic t³ + p t + q = 0 with x = t − b/3a.
	b1, c1, d1 := b/a, c/a, d/a
	shift := -b1 / 3
	p := c1 - b1*b1/3
	q := 2*b1*b1*b1/27 - b1*c1/3 + d1
	disc := q*q/4 + p*p*p/27

	var roots [3]complex128
	if disc < 0 {
		// Casus irreducibilis: three distinct real roots.
		r := 2 * math.Sqrt(-p/3)
		arg := max(-1, min(1, 3*q/(2*p)*math.Sqrt(-3/p)))
		phi := math.Acos(arg) / 3
		for k := range 3 {
			roots[k] = complex(r*math.Cos(phi-2*math.Pi*float64(k)/3)+shift, 0)
		}
	} else {
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		re := -(u+v)/2 + shift
		im := (u - v) * math.Sqrt(3) / 2
		if approxZero(im) {
			im = 0
		}
		roots = [3]complex128{complex(u+v+shift, 0), complex(re, im), complex(re, -im)}
	}

	coeffs := []float64{d, c, b, a}
	for i, r := range roots {
		if imag(r) == 0 {
			roots[i] = complex(newtonPolish(coeffs, real(r)), 0)
		}
	}
	return roots, 3
}

// newtonPolish refines a real root with a few Newton steps, keeping only
// steps that reduce the residual.
func newtonPolish(coeffs []float64, x float64) float64 {
	deriv := PolyDeriv(coeffs)
	fx := Horner(coeffs, x)
	for range 4 {
		if fx == 0 {
			break
		}
		dfx := Horner(deriv, x)
		if dfx == 0 {
			break
		}
		nx := x - fx/dfx
		nfx := Horner(coeffs, nx)
		if math.Abs(nfx) >= math.Abs(fx) {
			break
		}
		x, fx = nx, nfx
	}
	return x
}

func newtonPolishComplex(coeffs []float64, x complex128) complex128 {
	deriv := PolyDeriv(coeffs)
	fx := hornerComplex(coeffs, x)
	for range 4 {
		if fx == 0 {
			break
		}
		dfx := hornerComplex(deriv, x)
		if dfx == 0 {
			break
		}
		nx := x - fx/dfx
		nfx := hornerComplex(coeffs, nx)
		if cmplx.Abs(nfx) >= cmplx.Abs(fx) {
			break
		}
		x, fx = nx, nfx
	}
	return x
}

// laguerre finds one root of the polynomial using Laguerre's method, starting
// at x. It reports false if the iteration didn't converge within maxIter
// iterations.
func laguerre(coeffs []float64, x complex128, maxIter int) (complex128, bool) {
	const eps = 4 * 0x1p-52
	// Fractions used to break limit cycles.
	frac := [...]float64{0, 0.5, 0.25, 0.75, 0.13, 0.38, 0.62, 0.88, 1}

	m := len(coeffs) - 1
	n := complex(float64(m), 0)
	for iter := 1; iter <= maxIter; iter++ {
		b := complex(coeffs[m], 0)
		var d, f complex128
		errb := cmplx.Abs(b)
		abx := cmplx.Abs(x)
		for j := m - 1; j >= 0; j-- {
			f = x*f + d
			d = x*d + b
			b = x*b + complex(coeffs[j], 0)
			errb = cmplx.Abs(b) + abx*errb
		}
		if cmplx.Abs(b) <= errb*eps {
			// Within rounding error of a root.
			return x, true
		}
		g := d / b
		g2 := g * g
		h := g2 - 2*f/b
		sq := cmplx.Sqrt((n - 1) * (n*h - g2))
		gp := g + sq
		gm := g - sq
		if cmplx.Abs(gp) < cmplx.Abs(gm) {
			gp = gm
		}
		var dx complex128
		if cmplx.Abs(gp) > 0 {
			dx = n / gp
		} else {
			dx = cmplx.Rect(1+abx, float64(iter))
		}
		x1 := x - dx
		if x1 == x || cmplx.Abs(dx) <= eps*cmplx.Abs(x1) {
			return x1, true
		}
		if iter%10 != 0 {
			x = x1
		} else {
			x -= complex(frac[(iter/10)%len(frac)], 0) * dx
		}
	}
	return x, false
}

// rootSeeds are the starting points tried in turn when Laguerre's method
// doesn't converge.
var rootSeeds = [...]complex128{0, complex(1, 1), complex(-1, -1), complex(2, -0.5)}

// findRoot runs laguerre from each of rootSeeds until one converges. If none
// does, it returns the estimate with the smallest residual and false.
func findRoot(coeffs []float64, maxIter int) (complex128, bool) {
	var best complex128
	bestRes := math.Inf(1)
	for _, seed := range rootSeeds {
		x, ok := laguerre(coeffs, seed, maxIter)
		if ok {
			return x, true
		}
		if res := cmplx.Abs(hornerComplex(coeffs, x)); res < bestRes {
			best, bestRes = x, res
		}
	}
	return best, false
}

// PolynomialRoots finds the roots of a polynomial of any degree, real and
// complex.
//
// Roots are found one at a time with Laguerre's method and divided out of the
// polynomial, either as a real linear factor or as the quadratic factor of a
// complex conjugate pair, until at most a quadratic remains, which is solved
// in closed form. All roots are then polished against the undeflated
// polynomial. A root that fails to converge within [MaxRootIterations]
// from any of several starting points is divided out by its best estimate
// but not reported, so the result may hold fewer roots than the degree.
//
// Vanishing leading coefficients reduce the degree. The zero polynomial and
// constants have no roots.
func PolynomialRoots(coeffs []float64) []complex128 {
	orig := trimPoly(coeffs)
	if len(orig) < 2 {
		return nil
	}
	var roots []complex128
	p := slices.Clone(orig)
	for len(p)-1 > 2 {
		x, ok := findRoot(p, MaxRootIterations)
		if ok {
			x = newtonPolishComplex(orig, x)
		}
		if IsReal(x) {
			if ok {
				roots = append(roots, complex(real(x), 0))
			}
			p = Deflate(p, real(x))
		} else {
			if ok {
				roots = append(roots, x, cmplx.Conj(x))
			}
			p = deflateQuadratic(p, -2*real(x), real(x)*real(x)+imag(x)*imag(x))
		}
	}
	switch len(p) - 1 {
	case 2:
		qr, _ := quadraticRoots(p[2], p[1], p[0])
		roots = append(roots, qr[0], qr[1])
	case 1:
		roots = append(roots, complex(-p[0]/p[1], 0))
	}
	return polishRoots(orig, roots)
}

func polishRoots(coeffs []float64, roots []complex128) []complex128 {
	for i, r := range roots {
		r = newtonPolishComplex(coeffs, r)
		if approxZero(imag(r) / max(1, cmplx.Abs(r))) {
			r = complex(real(r), 0)
		}
		roots[i] = r
	}
	return roots
}

// RealRoots returns the real roots of a polynomial in ascending order. Cubic
// polynomials are solved in closed form with [CubicRoots], all other degrees
// with [PolynomialRoots].
func RealRoots(coeffs []float64) []float64 {
	coeffs = trimPoly(coeffs)
	var roots []complex128
	if len(coeffs) == 4 {
		r, n := CubicRoots(coeffs[3], coeffs[2], coeffs[1], coeffs[0])
		roots = r[:n]
	} else {
		roots = PolynomialRoots(coeffs)
	}
	var out []float64
	for _, r := range roots {
		if IsReal(r) {
			out = append(out, real(r))
		}
	}
	slices.Sort(out)
	return out
}
