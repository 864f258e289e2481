package fractal

import "context"

// DrawOption configures a single Draw call.
//
// Example:
//
//	// Default: one slice per hardware execution unit.
//	buf, err := r.Draw(cp, mp, alg, techniques, combine)
//
//	// Fixed partitioning, useful for reproducing worker-count bugs:
//	buf, err := r.Draw(cp, mp, alg, techniques, combine, fractal.WithWorkers(2))
type DrawOption func(*drawOptions)

// drawOptions holds optional configuration for one Draw call.
type drawOptions struct {
	workers int
	ctx     context.Context
}

// WithWorkers sets the number of workers (and therefore buffer slices)
// for the draw. A non-positive count selects the default, GOMAXPROCS.
// Output is byte-identical for every worker count.
func WithWorkers(n int) DrawOption {
	return func(o *drawOptions) {
		o.workers = n
	}
}

// WithContext attaches a context to the draw for cooperative
// cancellation. Workers check the context between pixels, never in the
// middle of one, so a pixel is always either fully written or not
// written at all. A canceled draw returns the context's error and no
// buffer.
func WithContext(ctx context.Context) DrawOption {
	return func(o *drawOptions) {
		o.ctx = ctx
	}
}
