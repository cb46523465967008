package content

import (
	"math"
	"math/rand/v2"
)

// Func is a real function of one variable.
type Func func(float64) float64

// Bisection finds a root of f inside [a, b] to within eps. It returns NaN
// when f does not change sign over the bracket.
func Bisection(f Func, a, b, eps float64) float64 {
	if a > b {
		a, b = b, a
	}
	if eps <= 0 {
		eps = 1e-9
	}
	fa, fb := f(a), f(b)
	switch {
	case fa == 0:
		return a
	case fb == 0:
		return b
	case math.IsNaN(fa) || math.IsNaN(fb) || fa*fb > 0:
		return math.NaN()
	}
	for b-a >= eps {
		mid := (a + b) / 2
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if fm*fa < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return (a + b) / 2
}

// Rectangle integrates f over [a, b] with right rectangles of width step.
func Rectangle(f Func, a, b, step float64) float64 {
	if step <= 0 || a == b {
		return 0
	}
	sign := 1.0
	if a > b {
		a, b, sign = b, a, -1
	}
	sum := 0.0
	for i := 0; ; i++ {
		x := b - float64(i)*step
		if x <= a {
			break
		}
		sum += f(x) * step
	}
	return sign * sum
}

// Trapezoid integrates f over [a, b] with n trapezoids.
func Trapezoid(f Func, a, b float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	h := (b - a) / float64(n)
	s := f(a) + f(b)
	for i := 1; i < n; i++ {
		s += 2 * f(a+float64(i)*h)
	}
	return h / 2 * s
}

var (
	gaussNodes   = [3]float64{-math.Sqrt(3.0 / 5.0), 0, math.Sqrt(3.0 / 5.0)}
	gaussWeights = [3]float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
)

// Gauss integrates f over [a, b] with three-point Gauss–Legendre quadrature
// on each of n equal subintervals.
func Gauss(f Func, a, b float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	h := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		mid := a + (float64(i)+0.5)*h
		for k, node := range gaussNodes {
			sum += gaussWeights[k] * f(mid+node*h/2)
		}
	}
	return sum * h / 2
}

// MonteCarlo estimates the integral of f over [a, b] from samples uniform
// draws. The seed makes the estimate reproducible.
func MonteCarlo(f Func, a, b float64, samples int, seed uint64) float64 {
	if samples <= 0 {
		return math.NaN()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sum := 0.0
	for i := 0; i < samples; i++ {
		sum += f(a + rng.Float64()*(b-a))
	}
	return (b - a) * sum / float64(samples)
}
