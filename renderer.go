package fractal

import (
	"github.com/gogpu/fractal/internal/parallel"
)

// Renderer owns the viewport state and the worker pool used to draw
// frames. Create one with NewRenderer and release it with Close.
//
// Renderer methods are not safe for concurrent use with each other:
// the presentation layer drives one renderer from one goroutine. Draw
// itself fans out across the pool internally.
type Renderer struct {
	view Viewport
	pool *parallel.Pool
}

// NewRenderer creates a renderer for the given frame dimensions with
// the default viewport.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{view: DefaultViewport(width, height)}
}

// Reset restores the default viewport, (-2,-2i) to (2,2i), keeping the
// current frame dimensions.
func (r *Renderer) Reset() {
	r.view = DefaultViewport(r.view.Width, r.view.Height)
}

// Resize updates the frame dimensions only; the complex-plane corners
// are untouched. The presentation layer must call Resize before Draw
// whenever its surface dimensions change.
func (r *Renderer) Resize(width, height int) {
	r.view = r.view.WithSize(width, height)
}

// Zoom remaps the viewport so that the rectangle between the two pixel
// corners fills the frame. Both corners are converted through the
// current mapping before any state changes.
func (r *Renderer) Zoom(fromX, fromY, toX, toY float64) {
	topLeft := r.view.ToFractalSpace(fromX, fromY)
	bottomRight := r.view.ToFractalSpace(toX, toY)
	r.view = r.view.ZoomedTo(topLeft, bottomRight)
}

// Viewport returns the current viewport state.
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// ToFractalSpace maps a pixel coordinate to the complex plane under
// the current viewport.
func (r *Renderer) ToFractalSpace(x, y float64) complex128 {
	return r.view.ToFractalSpace(x, y)
}

// ToBitmapSpace maps a complex-plane coordinate to pixel space, the
// inverse of ToFractalSpace.
func (r *Renderer) ToBitmapSpace(z complex128) (x, y float64) {
	return r.view.ToBitmapSpace(z)
}

// ensurePool returns a pool sized for the requested worker count,
// replacing the existing one if the count changed.
func (r *Renderer) ensurePool(workers int) *parallel.Pool {
	if r.pool != nil && r.pool.Workers() == workers && r.pool.IsRunning() {
		return r.pool
	}
	if r.pool != nil {
		r.pool.Close()
	}
	r.pool = parallel.New(workers)
	return r.pool
}

// Close releases the worker pool. The renderer must not be used after
// Close.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}
