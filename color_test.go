package fractal

import (
	"math"
	"testing"
)

func TestARGB_Clamps(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b float64
		want       Color
	}{
		{"in range", 1, 0.5, 0.25, 0, Color{A: 1, R: 0.5, G: 0.25, B: 0}},
		{"above one", 2, 1.5, 7, 1.01, Color{A: 1, R: 1, G: 1, B: 1}},
		{"below zero", -1, -0.5, -7, -0.01, Color{A: 0, R: 0, G: 0, B: 0}},
		{"mixed", -3, 0.5, 9, 1, Color{A: 0, R: 0.5, G: 1, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGB(tt.a, tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ARGB(%v, %v, %v, %v) = %+v, want %+v",
					tt.a, tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColor_ArithmeticDoesNotClamp(t *testing.T) {
	c := White.AddScalar(1)
	if c.R != 2 || c.G != 2 || c.B != 2 || c.A != 2 {
		t.Errorf("AddScalar clamped: %+v", c)
	}

	c = Black.SubScalar(1)
	if c.R != -1 || c.A != -1 {
		t.Errorf("SubScalar clamped: %+v", c)
	}

	c = White.MulScalar(3).Mul(White)
	if c.R != 3 {
		t.Errorf("Mul clamped: %+v", c)
	}
}

func TestColor_ClampProperty(t *testing.T) {
	inputs := []Color{
		{A: 2, R: -1, G: 0.5, B: 7},
		White.MulScalar(10),
		Black.SubScalar(3),
		{A: 0.5, R: 0.1, G: 0.9, B: 1},
	}

	for _, c := range inputs {
		got := c.Clamp01()
		for _, ch := range []float64{got.A, got.R, got.G, got.B} {
			if ch < 0 || ch > 1 {
				t.Errorf("Clamp01(%+v) = %+v, channel %v out of range", c, got, ch)
			}
		}
	}
}

func TestColor_ClampRange(t *testing.T) {
	c := Color{A: 0.9, R: -1, G: 0.5, B: 2}.Clamp(0.25, 0.75)
	want := Color{A: 0.75, R: 0.25, G: 0.5, B: 0.75}
	if c != want {
		t.Errorf("Clamp(0.25, 0.75) = %+v, want %+v", c, want)
	}
}

func TestFromHue_PrimaryColors(t *testing.T) {
	tests := []struct {
		h    float64
		want Color
	}{
		{0, RGB(1, 0, 0)},
		{1.0 / 3, RGB(0, 1, 0)},
		{2.0 / 3, RGB(0, 0, 1)},
		{1, RGB(1, 0, 0)},
	}

	for _, tt := range tests {
		got := FromHue(tt.h)
		if !colorNear(got, tt.want, 1e-12) {
			t.Errorf("FromHue(%v) = %+v, want %+v", tt.h, got, tt.want)
		}
	}
}

func TestFromHsv(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    Color
	}{
		{"full red", 0, 1, 1, RGB(1, 0, 0)},
		{"zero saturation is gray", 0.37, 0, 0.8, RGB(0.8, 0.8, 0.8)},
		{"half saturation", 0, 0.5, 0.8, RGB(0.8, 0.4, 0.4)},
		{"zero value is black", 0.5, 1, 0, RGB(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHsv(tt.h, tt.s, tt.v)
			if !colorNear(got, tt.want, 1e-12) {
				t.Errorf("FromHsv(%v, %v, %v) = %+v, want %+v",
					tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestFromHsl(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{"full red", 0, 1, 0.5, RGB(1, 0, 0)},
		{"zero saturation is gray", 0.8, 0, 0.3, RGB(0.3, 0.3, 0.3)},
		{"full lightness is white", 0.1, 1, 1, RGB(1, 1, 1)},
		{"zero lightness is black", 0.1, 1, 0, RGB(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHsl(tt.h, tt.s, tt.l)
			if !colorNear(got, tt.want, 1e-12) {
				t.Errorf("FromHsl(%v, %v, %v) = %+v, want %+v",
					tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestContrast(t *testing.T) {
	// Mid-gray is the fixed point of the contrast curve.
	c := Gray(0.5).Contrast(2)
	if !colorNear(c, RGB(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Contrast(2) moved mid-gray: %+v", c)
	}

	c = Gray(0.25).Contrast(2)
	if !colorNear(c, Color{A: 1, R: 0, G: 0, B: 0}, 1e-12) {
		t.Errorf("Gray(0.25).Contrast(2) = %+v, want 0", c)
	}
}

func TestContrastBrightness_AlphaUntouched(t *testing.T) {
	c := ARGB(0.5, 0.2, 0.4, 0.6)

	if got := c.Contrast(3); got.A != 0.5 {
		t.Errorf("Contrast changed alpha: %v", got.A)
	}
	if got := c.Brightness(0.4); got.A != 0.5 {
		t.Errorf("Brightness changed alpha: %v", got.A)
	}

	// Brightness is a plain channel offset and does not clamp.
	got := c.Brightness(0.9)
	if absDiff(got.R, 1.1) > 1e-12 || absDiff(got.G, 1.3) > 1e-12 {
		t.Errorf("Brightness(0.9) = %+v", got)
	}
}

func TestAverage(t *testing.T) {
	got := Average(ARGB(0, 0, 0, 0), ARGB(1, 1, 1, 1))
	want := Color{A: 0.5, R: 0.5, G: 0.5, B: 0.5}
	if !colorNear(got, want, 1e-12) {
		t.Errorf("Average = %+v, want %+v", got, want)
	}

	got = Average(RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1))
	if !colorNear(got, Color{A: 1, R: 1.0 / 3, G: 1.0 / 3, B: 1.0 / 3}, 1e-12) {
		t.Errorf("Average of primaries = %+v", got)
	}
}

func TestAverage_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Average() of no colors did not panic")
		}
	}()
	Average()
}

func TestWeightedSum_NormalizesByCount(t *testing.T) {
	// The divisor is the number of colors, not the weight total:
	// two colors with weights summing to 1 halve the intensity.
	got := WeightedSum([]Color{White, White}, []float64{1, 0})
	want := Color{A: 0.5, R: 0.5, G: 0.5, B: 0.5}
	if !colorNear(got, want, 1e-12) {
		t.Errorf("WeightedSum = %+v, want %+v", got, want)
	}

	// Equal unit weights reduce to the plain mean.
	got = WeightedSum([]Color{White, Black}, []float64{1, 1})
	if !colorNear(got, Average(White, Black), 1e-12) {
		t.Errorf("unit weights: got %+v, want mean", got)
	}
}

func TestWeightedSum_UsageErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("empty WeightedSum did not panic")
			}
		}()
		WeightedSum(nil, nil)
	})

	t.Run("length mismatch", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("mismatched WeightedSum did not panic")
			}
		}()
		WeightedSum([]Color{White}, []float64{1, 2})
	})
}

func TestColor_NaNPropagates(t *testing.T) {
	nan := math.NaN()
	c := Color{A: 1, R: nan, G: 0.5, B: 0.5}

	got := c.Clamp01()
	if !math.IsNaN(got.R) {
		t.Errorf("Clamp01 silenced NaN: %+v", got)
	}

	got = c.Add(White).Contrast(2).Brightness(0.1)
	if !math.IsNaN(got.R) {
		t.Errorf("arithmetic silenced NaN: %+v", got)
	}
	if math.IsNaN(got.G) {
		t.Error("NaN spread to unrelated channel")
	}
}

func colorNear(a, b Color, tol float64) bool {
	return absDiff(a.A, b.A) <= tol &&
		absDiff(a.R, b.R) <= tol &&
		absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
