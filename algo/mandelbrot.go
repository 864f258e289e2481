package algo

import (
	"math"
	"math/cmplx"

	"github.com/gogpu/fractal"
)

// Mandelbrot iterates z <- z^2 + c from z = 0, with c the starting
// point itself. motion rotates c around the origin, which turns the
// familiar static set into a swirling animation; motion = 0 renders
// the classic Mandelbrot set.
type Mandelbrot struct {
	maxIterations int
}

// NewMandelbrot creates a Mandelbrot algorithm with the given
// iteration budget.
func NewMandelbrot(maxIterations int) *Mandelbrot {
	return &Mandelbrot{maxIterations: maxIterations}
}

// Calculate implements fractal.Algorithm.
func (m *Mandelbrot) Calculate(z0 complex128, motion float64) fractal.IterationResult {
	theta := 2 * math.Pi * motion
	rot := complex(math.Cos(theta), math.Sin(theta))
	c := z0 * rot

	var z complex128
	i := 0
	for ; i < m.maxIterations; i++ {
		if cmplx.Abs(z) >= escapeRadius {
			break
		}
		z = z*z + c
	}

	return fractal.IterationResult{
		Original:      z0,
		Final:         z,
		Iterations:    i,
		MaxIterations: m.maxIterations,
	}
}
