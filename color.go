package fractal

import (
	"image/color"
	"math"
)

// Color represents a color with alpha, red, green, and blue components.
// Each component is semantically a normalized intensity in [0, 1], but
// only the constructors and the explicit Clamp methods guarantee that
// range: the arithmetic operators do not clamp, so intermediate values
// may leave [0, 1] and must be re-clamped before display.
type Color struct {
	A, R, G, B float64
}

// ARGB creates a color from alpha, red, green, and blue components,
// each clamped to [0, 1].
func ARGB(a, r, g, b float64) Color {
	return Color{
		A: clamp01(a),
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
	}
}

// RGB creates an opaque color from red, green, and blue components,
// each clamped to [0, 1].
func RGB(r, g, b float64) Color {
	return ARGB(1, r, g, b)
}

// Gray creates an opaque color with all three channels set to v,
// clamped to [0, 1].
func Gray(v float64) Color {
	return RGB(v, v, v)
}

// FromHue creates a fully saturated opaque color from a hue in [0, 1].
// The piecewise-linear ramp places red at 0, green at 1/3, blue at 2/3,
// wrapping back to red at 1.
func FromHue(h float64) Color {
	return RGB(
		math.Abs(h*6-3)-1,
		2-math.Abs(h*6-2),
		2-math.Abs(h*6-4),
	)
}

// FromHsv creates an opaque color from hue, saturation, and value,
// all in [0, 1].
func FromHsv(h, s, v float64) Color {
	ramp := FromHue(h)
	return RGB(
		((ramp.R-1)*s+1)*v,
		((ramp.G-1)*s+1)*v,
		((ramp.B-1)*s+1)*v,
	)
}

// FromHsl creates an opaque color from hue, saturation, and lightness,
// all in [0, 1].
func FromHsl(h, s, l float64) Color {
	ramp := FromHue(h)
	c := (1 - math.Abs(2*l-1)) * s
	return RGB(
		(ramp.R-0.5)*c+l,
		(ramp.G-0.5)*c+l,
		(ramp.B-0.5)*c+l,
	)
}

// Contrast scales the distance of the red, green, and blue channels
// from mid-gray by c. Alpha is left untouched. The result is not
// clamped.
func (col Color) Contrast(c float64) Color {
	offset := 0.5 - 0.5*c
	return Color{
		A: col.A,
		R: col.R*c + offset,
		G: col.G*c + offset,
		B: col.B*c + offset,
	}
}

// Brightness adds b to the red, green, and blue channels. Alpha is
// left untouched. The result is not clamped.
func (col Color) Brightness(b float64) Color {
	return Color{
		A: col.A,
		R: col.R + b,
		G: col.G + b,
		B: col.B + b,
	}
}

// Add returns the componentwise sum of two colors, unclamped.
func (col Color) Add(o Color) Color {
	return Color{A: col.A + o.A, R: col.R + o.R, G: col.G + o.G, B: col.B + o.B}
}

// Sub returns the componentwise difference of two colors, unclamped.
func (col Color) Sub(o Color) Color {
	return Color{A: col.A - o.A, R: col.R - o.R, G: col.G - o.G, B: col.B - o.B}
}

// Mul returns the componentwise product of two colors, unclamped.
func (col Color) Mul(o Color) Color {
	return Color{A: col.A * o.A, R: col.R * o.R, G: col.G * o.G, B: col.B * o.B}
}

// Div returns the componentwise quotient of two colors, unclamped.
func (col Color) Div(o Color) Color {
	return Color{A: col.A / o.A, R: col.R / o.R, G: col.G / o.G, B: col.B / o.B}
}

// AddScalar adds s to every component, unclamped.
func (col Color) AddScalar(s float64) Color {
	return Color{A: col.A + s, R: col.R + s, G: col.G + s, B: col.B + s}
}

// SubScalar subtracts s from every component, unclamped.
func (col Color) SubScalar(s float64) Color {
	return Color{A: col.A - s, R: col.R - s, G: col.G - s, B: col.B - s}
}

// MulScalar multiplies every component by s, unclamped.
func (col Color) MulScalar(s float64) Color {
	return Color{A: col.A * s, R: col.R * s, G: col.G * s, B: col.B * s}
}

// DivScalar divides every component by s, unclamped.
func (col Color) DivScalar(s float64) Color {
	return Color{A: col.A / s, R: col.R / s, G: col.G / s, B: col.B / s}
}

// Average returns the componentwise mean of the given colors.
// It panics if called with no colors; an empty average is a usage
// error, not a runtime condition.
func Average(colors ...Color) Color {
	if len(colors) == 0 {
		panic("fractal: Average of no colors")
	}
	var sum Color
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.DivScalar(float64(len(colors)))
}

// WeightedSum returns the componentwise sum of colors[i]*weights[i],
// divided by the number of colors. Note that the result is normalized
// by the count of colors, not by the total weight, so weights that do
// not sum to len(colors) scale the output accordingly.
//
// WeightedSum panics on empty input or mismatched lengths.
func WeightedSum(colors []Color, weights []float64) Color {
	if len(colors) == 0 {
		panic("fractal: WeightedSum of no colors")
	}
	if len(colors) != len(weights) {
		panic("fractal: WeightedSum colors/weights length mismatch")
	}
	var sum Color
	for i, c := range colors {
		sum = sum.Add(c.MulScalar(weights[i]))
	}
	return sum.DivScalar(float64(len(colors)))
}

// Clamp returns a copy with every component clamped to [min, max].
func (col Color) Clamp(min, max float64) Color {
	return Color{
		A: clampRange(col.A, min, max),
		R: clampRange(col.R, min, max),
		G: clampRange(col.G, min, max),
		B: clampRange(col.B, min, max),
	}
}

// Clamp01 returns a copy with every component clamped to [0, 1].
func (col Color) Clamp01() Color {
	return col.Clamp(0, 1)
}

// NRGBA converts the color to 8-bit color.NRGBA, clamping each channel.
func (col Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(col.R) * 255),
		G: uint8(clamp01(col.G) * 255),
		B: uint8(clamp01(col.B) * 255),
		A: uint8(clamp01(col.A) * 255),
	}
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampRange(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = ARGB(0, 0, 0, 0)
)
