package algo

import (
	"math"
	"math/cmplx"

	"github.com/gogpu/fractal"
)

const (
	// juliaRadius is the radius of the circle on which the Julia
	// constant c travels as motion sweeps [0, 1).
	juliaRadius = 0.7885

	// escapeRadius is the magnitude threshold shared by the
	// escape-time algorithms: iteration stops as soon as |z| >= 2.
	escapeRadius = 2.0
)

// juliaConstant returns c = juliaRadius*(cos th, sin th) for
// th = 2*pi*motion.
func juliaConstant(motion float64) complex128 {
	theta := 2 * math.Pi * motion
	return complex(juliaRadius*math.Cos(theta), juliaRadius*math.Sin(theta))
}

// Julia is the classic quadratic Julia set: z <- z^2 + c.
type Julia struct {
	maxIterations int
}

// NewJulia creates a Julia algorithm with the given iteration budget.
func NewJulia(maxIterations int) *Julia {
	return &Julia{maxIterations: maxIterations}
}

// Calculate implements fractal.Algorithm.
func (j *Julia) Calculate(z0 complex128, motion float64) fractal.IterationResult {
	c := juliaConstant(motion)

	z := z0
	i := 0
	for ; i < j.maxIterations; i++ {
		if cmplx.Abs(z) >= escapeRadius {
			break
		}
		z = z*z + c
	}

	return fractal.IterationResult{
		Original:      z0,
		Final:         z,
		Iterations:    i,
		MaxIterations: j.maxIterations,
	}
}

// JuliaExp4 is a Julia variant that folds z into the first quadrant
// before raising it to an animated exponent:
// z <- Abs(z)^e + c, with e swept over [2, 7] by motion.
type JuliaExp4 struct {
	maxIterations int
}

// NewJuliaExp4 creates a JuliaExp4 algorithm with the given iteration
// budget.
func NewJuliaExp4(maxIterations int) *JuliaExp4 {
	return &JuliaExp4{maxIterations: maxIterations}
}

// Calculate implements fractal.Algorithm.
func (j *JuliaExp4) Calculate(z0 complex128, motion float64) fractal.IterationResult {
	theta := 2 * math.Pi * motion
	e := ((math.Cos(theta)+1)/2)*5 + 2
	c := juliaConstant(motion)

	z := z0
	i := 0
	for ; i < j.maxIterations; i++ {
		if cmplx.Abs(z) >= escapeRadius {
			break
		}
		z = Pow(Abs(z), e) + c
	}

	return fractal.IterationResult{
		Original:      z0,
		Final:         z,
		Iterations:    i,
		MaxIterations: j.maxIterations,
	}
}

// JuliaExp5 is the quintic Julia variant: z <- z^5 + c.
type JuliaExp5 struct {
	maxIterations int
}

// NewJuliaExp5 creates a JuliaExp5 algorithm with the given iteration
// budget.
func NewJuliaExp5(maxIterations int) *JuliaExp5 {
	return &JuliaExp5{maxIterations: maxIterations}
}

// Calculate implements fractal.Algorithm.
func (j *JuliaExp5) Calculate(z0 complex128, motion float64) fractal.IterationResult {
	c := juliaConstant(motion)

	z := z0
	i := 0
	for ; i < j.maxIterations; i++ {
		if cmplx.Abs(z) >= escapeRadius {
			break
		}
		z = Pow(z, 5) + c
	}

	return fractal.IterationResult{
		Original:      z0,
		Final:         z,
		Iterations:    i,
		MaxIterations: j.maxIterations,
	}
}
