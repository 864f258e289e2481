// Package fractal renders escape-time and root-finding fractals to flat
// pixel buffers.
//
// # Overview
//
// fractal is a pure Go computation engine: it iterates complex-number
// formulas per pixel, classifies the iteration behavior, maps it to a
// color, and writes the result into a byte buffer. It deliberately owns
// no window, canvas, or event loop; a presentation layer turns the
// returned buffer into a displayable bitmap.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fractal"
//	    "github.com/gogpu/fractal/algo"
//	    "github.com/gogpu/fractal/coloring"
//	)
//
//	r := fractal.NewRenderer(800, 600)
//	defer r.Close()
//
//	buf, err := r.Draw(0.3, 0.15,
//	    algo.NewJulia(128),
//	    []fractal.Technique{coloring.NewSpectral()},
//	    fractal.CombineFirst)
//
// The buffer is width*height*4 bytes, row-major, BGRA byte order.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Viewport, Renderer, the Algorithm and
//     Technique interfaces, Combiner functions
//   - algo: the built-in iteration formulas (Julia variants, Newton,
//     Mandelbrot) plus the complex-number extensions they share
//   - coloring: the built-in coloring techniques
//   - internal/parallel: the fork-join worker pool behind Draw
//
// # Coordinate System
//
// Pixel space uses standard computer graphics coordinates: origin at
// top-left, x increases right, y increases down. The viewport defines
// the affine mapping between pixel space and the complex plane; the
// default viewport spans (-2,-2i) to (2,2i).
//
// # Concurrency
//
// Draw partitions the output buffer into disjoint slices and computes
// them on a worker pool. Algorithms, techniques, and combiners are
// invoked concurrently from multiple goroutines and must be pure
// functions of their arguments. Output is byte-identical regardless of
// worker count.
package fractal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
