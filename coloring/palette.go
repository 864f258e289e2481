package coloring

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/fractal"
)

// Palette colors by looking the iteration ratio up in a gradient built
// from fixed stops, blended in HSV space. colorParam shifts the lookup
// position, cycling the gradient. Points that exhaust the budget
// render opaque black.
type Palette struct {
	stops []colorful.Color
}

// NewPalette creates a palette technique from at least two gradient
// stops. Fewer than two stops is a usage error and panics.
func NewPalette(stops ...fractal.Color) Palette {
	if len(stops) < 2 {
		panic("coloring: NewPalette requires at least two stops")
	}
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c := s.Clamp01()
		cs[i] = colorful.Color{R: c.R, G: c.G, B: c.B}
	}
	return Palette{stops: cs}
}

// Colorize implements fractal.Technique.
func (p Palette) Colorize(result fractal.IterationResult, colorParam float64) fractal.Color {
	if !result.Escaped() {
		return fractal.Black
	}

	t := float64(result.Iterations)/float64(result.MaxIterations) + colorParam
	t -= float64(int(t)) // wrap into [0, 1)

	// Locate the segment and blend inside it.
	segments := len(p.stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	frac := pos - float64(i)

	c := p.stops[i].BlendHsv(p.stops[i+1], frac)
	return fractal.RGB(c.R, c.G, c.B)
}
