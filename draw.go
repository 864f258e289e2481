package fractal

import (
	"context"
	"errors"
	"runtime"

	"github.com/gogpu/fractal/internal/parallel"
)

// Draw renders one frame and returns the pixel buffer: width*height*4
// bytes, row-major, BGRA byte order, no padding. This exact layout is
// the contract with the bitmap-presentation layer.
//
// colorParam and motionParam are conventionally in [0, 1); the
// presentation layer steps and wraps them between frames to animate.
// Every pixel is mapped to the complex plane, classified by alg,
// colored by every technique in order, and reduced to one color by
// combine (nil selects CombineFirst).
//
// The buffer is partitioned into contiguous, pixel-aligned slices, one
// per worker, and computed in parallel; Draw returns only after every
// slice has completed. alg, techniques, and combine are called
// concurrently and must be pure. Any panic inside a worker aborts the
// whole draw and is reported as a single error; there is no
// partial-result mode.
func (r *Renderer) Draw(colorParam, motionParam float64, alg Algorithm, techniques []Technique, combine Combiner, opts ...DrawOption) ([]byte, error) {
	if alg == nil {
		return nil, errors.New("fractal: Draw requires an algorithm")
	}
	if len(techniques) == 0 {
		return nil, errors.New("fractal: Draw requires at least one coloring technique")
	}
	if combine == nil {
		combine = CombineFirst
	}

	var o drawOptions
	for _, opt := range opts {
		opt(&o)
	}

	width, height := r.view.Width, r.view.Height
	if width <= 0 || height <= 0 {
		return nil, errors.New("fractal: Draw on empty frame")
	}
	buf := make([]byte, width*height*4)

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if pixels := width * height; workers > pixels {
		Logger().Warn("worker count exceeds pixel count, clamping",
			"workers", workers, "pixels", pixels)
		workers = pixels
	}

	// Contiguous, pixel-aligned slices; the last absorbs the remainder.
	sliceBytes := (len(buf) / workers) &^ 3

	view := r.view
	tasks := make([]parallel.Task, workers)
	for i := 0; i < workers; i++ {
		start := i * sliceBytes
		end := start + sliceBytes
		if i == workers-1 {
			end = len(buf)
		}
		tasks[i] = func() error {
			return drawSlice(o.ctx, buf, start, end, view, colorParam, motionParam, alg, techniques, combine)
		}
	}

	Logger().Debug("draw dispatch",
		"width", width, "height", height,
		"workers", workers, "sliceBytes", sliceBytes)

	if err := r.ensurePool(workers).ExecuteAll(tasks); err != nil {
		return nil, err
	}
	return buf, nil
}

// drawSlice computes every pixel of one buffer slice. start and end
// are byte offsets into buf; both are pixel-aligned. The slice is
// exclusively owned by this call for the duration of the draw, so no
// locking is needed.
func drawSlice(ctx context.Context, buf []byte, start, end int, view Viewport, colorParam, motionParam float64, alg Algorithm, techniques []Technique, combine Combiner) error {
	colors := make([]Color, len(techniques))

	for off := start; off < end; off += 4 {
		if ctx != nil {
			// Cooperative cancellation between pixels only: a pixel is
			// never left half-written.
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		pixel := off / 4
		x := pixel % view.Width
		y := pixel / view.Width

		z := view.ToFractalSpace(float64(x), float64(y))
		result := alg.Calculate(z, motionParam)

		for i, t := range techniques {
			colors[i] = t.Colorize(result, colorParam)
		}
		c := combine(colors).Clamp01()

		buf[off+0] = uint8(c.B * 255)
		buf[off+1] = uint8(c.G * 255)
		buf[off+2] = uint8(c.R * 255)
		buf[off+3] = uint8(c.A * 255)
	}
	return nil
}
