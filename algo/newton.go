package algo

import (
	"math"
	"math/cmplx"

	"github.com/gogpu/fractal"
)

// convergenceDelta is the step size below which a Newton iteration is
// considered converged.
const convergenceDelta = 1e-5

// Newton runs Newton's method on f(x) = x^e - 1 with an animated
// exponent e swept over [2.5, 5.5] by motion. Unlike the escape-time
// algorithms it terminates on convergence: iteration stops once the
// step |z_new - z_old| drops to convergenceDelta, or when the budget
// is exhausted.
//
// There is no guard against f'(z) = 0; that case produces NaN/Inf
// components which propagate through the remaining iterations
// unmodified.
type Newton struct {
	maxIterations int
}

// NewNewton creates a Newton algorithm with the given iteration budget.
func NewNewton(maxIterations int) *Newton {
	return &Newton{maxIterations: maxIterations}
}

// Calculate implements fractal.Algorithm.
func (n *Newton) Calculate(z0 complex128, motion float64) fractal.IterationResult {
	theta := 2 * math.Pi * motion
	e := ((math.Sin(theta)+1)/2)*3 + 2.5

	z := z0
	i := 0
	for ; i < n.maxIterations; i++ {
		f := Pow(z, e) - 1
		fp := complex(e, 0) * Pow(z, e-1)
		next := z - f/fp

		delta := cmplx.Abs(next - z)
		z = next
		if delta <= convergenceDelta {
			break
		}
	}

	return fractal.IterationResult{
		Original:      z0,
		Final:         z,
		Iterations:    i,
		MaxIterations: n.maxIterations,
	}
}
