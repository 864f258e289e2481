package coloring

import (
	"math"
	"math/cmplx"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/fractal"
)

// Smooth colors escape-time results by the renormalized iteration
// count, which removes the banding of the raw integer count. The
// smooth count drives the hue; colorParam rotates the whole palette.
// Points that never escape render opaque black.
//
// Smooth assumes the |z| >= 2 escape rule of the escape-time
// algorithms; feeding it convergence-based results (Newton) produces
// defined but unsmooth output.
type Smooth struct{}

// NewSmooth creates a smooth-iteration technique.
func NewSmooth() Smooth {
	return Smooth{}
}

// Colorize implements fractal.Technique.
func (Smooth) Colorize(result fractal.IterationResult, colorParam float64) fractal.Color {
	if !result.Escaped() {
		return fractal.Black
	}

	mu := float64(result.Iterations) - math.Log(math.Log(cmplx.Abs(result.Final)))/math.Ln2
	hue := math.Mod(mu*0.02+colorParam, 1)
	if hue < 0 {
		hue += 1
	}

	c := colorful.Hsv(hue*360, 0.8, 1.0)
	return fractal.RGB(c.R, c.G, c.B)
}
