// Package algo provides the built-in fractal iteration algorithms and
// the complex-number extensions they share.
//
// Every algorithm implements fractal.Algorithm: it is configured with
// a positive iteration budget at construction, and Calculate iterates
// its formula from the given starting point, animating one free
// parameter from motion in [0, 1). Calculate is pure and safe to call
// from any number of goroutines.
package algo

import (
	"math"
	"math/cmplx"
)

// Pow raises z to a real power in polar form: the magnitude becomes
// exp(ln|z|*p) and the phase is multiplied by p.
//
// Pow is not guarded at the origin: |z| = 0 with p < 0 produces
// NaN/Inf components, which propagate through the iteration unmodified.
func Pow(z complex128, p float64) complex128 {
	m := math.Exp(math.Log(cmplx.Abs(z)) * p)
	phase := cmplx.Phase(z) * p
	return complex(m*math.Cos(phase), m*math.Sin(phase))
}

// Abs returns the componentwise absolute value (|Re z|, |Im z|).
// This is not the complex modulus.
func Abs(z complex128) complex128 {
	return complex(math.Abs(real(z)), math.Abs(imag(z)))
}
