package fractal

// Algorithm iterates a fractal formula from a starting point and
// classifies the behavior. Implementations are configured with an
// iteration budget at construction; motion is conventionally in [0, 1)
// and animates the formula's free parameter.
//
// Calculate is invoked concurrently from multiple goroutines during a
// draw and must be a pure function of its arguments.
type Algorithm interface {
	Calculate(z complex128, motion float64) IterationResult
}

// Technique maps an iteration outcome and a scalar parameter to a
// color. colorParam is conventionally in [0, 1) and animates the
// technique's palette.
//
// Colorize is invoked concurrently from multiple goroutines during a
// draw and must be a pure function of its arguments.
type Technique interface {
	Colorize(result IterationResult, colorParam float64) Color
}
