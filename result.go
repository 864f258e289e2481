package fractal

// IterationResult records the outcome of iterating a fractal formula
// from a single starting point. It is produced once per Algorithm
// invocation and consumed by coloring techniques; treat it as
// immutable.
type IterationResult struct {
	// Original is the starting point of the iteration, i.e. the
	// complex coordinate of the pixel being classified.
	Original complex128

	// Final is the value of z when iteration stopped.
	Final complex128

	// Iterations is the loop index at early termination, or
	// MaxIterations if the loop ran to completion without triggering
	// its stop condition.
	Iterations int

	// MaxIterations is the iteration budget the algorithm was
	// configured with.
	MaxIterations int
}

// Escaped reports whether the iteration terminated before exhausting
// its budget.
func (r IterationResult) Escaped() bool {
	return r.Iterations < r.MaxIterations
}
