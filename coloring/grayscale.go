package coloring

import (
	"github.com/gogpu/fractal"
)

// Grayscale maps the iteration ratio straight to a gray level: points
// that exhaust the budget render white, instant escapes render black.
// colorParam is ignored.
type Grayscale struct{}

// NewGrayscale creates a grayscale technique.
func NewGrayscale() Grayscale {
	return Grayscale{}
}

// Colorize implements fractal.Technique.
func (Grayscale) Colorize(result fractal.IterationResult, _ float64) fractal.Color {
	t := clamp01(float64(result.Iterations) / float64(result.MaxIterations))
	return fractal.Gray(t)
}
