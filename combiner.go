package fractal

// Combiner reduces the ordered per-technique colors of one pixel to the
// single color written to the buffer. Like techniques, combiners run
// concurrently and must be pure.
type Combiner func(colors []Color) Color

// CombineFirst returns the first technique's color unchanged.
func CombineFirst(colors []Color) Color {
	return colors[0]
}

// CombineMean returns the componentwise mean of all technique colors.
func CombineMean(colors []Color) Color {
	return Average(colors...)
}

// CombineWeighted returns a Combiner that computes the weighted sum of
// the technique colors with the given fixed weights. The weight slice
// must match the number of registered techniques.
func CombineWeighted(weights ...float64) Combiner {
	return func(colors []Color) Color {
		return WeightedSum(colors, weights)
	}
}
