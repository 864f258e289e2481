// Package coloring provides the built-in coloring techniques.
//
// Every technique implements fractal.Technique: Colorize maps one
// iteration outcome plus a scalar color parameter (conventionally in
// [0, 1)) to a color. Techniques are pure and safe to call from any
// number of goroutines.
package coloring

import (
	"math"
	"math/cmplx"

	"github.com/gogpu/fractal"
)

// Spectral composes the iteration ratio, the phase of the final point,
// and its squared magnitude into a hue-shifted color, then pushes the
// result through a brightness and contrast curve. It produces
// readable structure for both escape-time and root-finding algorithms
// and is the default technique of cmd/fracgen.
type Spectral struct{}

// NewSpectral creates a spectral coloring technique.
func NewSpectral() Spectral {
	return Spectral{}
}

// Colorize implements fractal.Technique.
func (Spectral) Colorize(result fractal.IterationResult, colorParam float64) fractal.Color {
	t := clamp01(float64(result.Iterations) / float64(result.MaxIterations))
	phase := clamp01((math.Sin(cmplx.Phase(result.Final)) + 1) / 2)

	m := real(result.Final)*real(result.Final) + imag(result.Final)*imag(result.Final)
	if m >= 4 {
		m = m / 8
	} else {
		m = m / 2
	}
	m = clamp01(m)

	mixColor := fractal.FromHsv(phase, m*phase, 1-m)
	hueColor := fractal.FromHsl(colorParam, 0.7, 0.7)
	grey := fractal.Average(
		fractal.Gray(phase),
		fractal.Gray(m),
		fractal.Gray(t),
	)

	out := hueColor.Mul(grey).MulScalar(3).Add(mixColor).DivScalar(4)
	return out.Brightness(0.2).Contrast(2.5)
}

// clamp01 restricts a value to [0, 1]. NaN passes through.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
