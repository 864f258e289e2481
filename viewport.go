package fractal

// defaultSpan is the width (and height) of the reset viewport, which
// covers the complex plane from (-2,-2i) to (2,2i).
const defaultSpan = 4.0

// Viewport is the rectangular region of the complex plane currently
// mapped onto the pixel buffer, together with the frame dimensions it
// is mapped to. It is a value type: the transition methods return a
// new state instead of mutating, which keeps the mapping functions
// free of hidden aliasing.
type Viewport struct {
	// TopLeft and BottomRight are the complex-plane corners mapped to
	// pixel (0,0) and pixel (width,height) respectively.
	TopLeft     complex128
	BottomRight complex128

	// Increment is the per-pixel step along each axis, recomputed on
	// every corner change.
	Increment complex128

	// ZoomLevel is the magnification relative to the reset viewport:
	// defaultSpan divided by the current horizontal span.
	ZoomLevel float64

	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int
}

// DefaultViewport returns the reset viewport for the given frame
// dimensions: corners (-2,-2i) and (2,2i), zoom level 1.
func DefaultViewport(width, height int) Viewport {
	return Viewport{
		TopLeft:     complex(-defaultSpan/2, -defaultSpan/2),
		BottomRight: complex(defaultSpan/2, defaultSpan/2),
		Increment:   complex(defaultSpan/float64(width), defaultSpan/float64(height)),
		ZoomLevel:   1,
		Width:       width,
		Height:      height,
	}
}

// WithSize returns a copy with new frame dimensions. The complex-plane
// corners are left untouched, so the same region is remapped onto the
// new pixel grid.
func (v Viewport) WithSize(width, height int) Viewport {
	v.Width = width
	v.Height = height
	return v
}

// ZoomedTo returns a copy with new complex-plane corners. Increment
// and ZoomLevel are recomputed from the new span and the current frame
// dimensions.
func (v Viewport) ZoomedTo(topLeft, bottomRight complex128) Viewport {
	v.TopLeft = topLeft
	v.BottomRight = bottomRight
	v.Increment = complex(
		(real(bottomRight)-real(topLeft))/float64(v.Width),
		(imag(bottomRight)-imag(topLeft))/float64(v.Height),
	)
	v.ZoomLevel = defaultSpan / (real(bottomRight) - real(topLeft))
	return v
}

// ToFractalSpace maps a pixel coordinate to its complex-plane
// coordinate under the current viewport. It is called once per pixel
// during a draw, so it must stay cheap and allocation-free.
func (v Viewport) ToFractalSpace(x, y float64) complex128 {
	return complex(
		real(v.TopLeft)+x*(real(v.BottomRight)-real(v.TopLeft))/float64(v.Width),
		imag(v.TopLeft)+y*(imag(v.BottomRight)-imag(v.TopLeft))/float64(v.Height),
	)
}

// ToBitmapSpace maps a complex-plane coordinate to its pixel
// coordinate, the inverse of ToFractalSpace.
func (v Viewport) ToBitmapSpace(z complex128) (x, y float64) {
	x = (real(z) - real(v.TopLeft)) / (real(v.BottomRight) - real(v.TopLeft)) * float64(v.Width)
	y = (imag(z) - imag(v.TopLeft)) / (imag(v.BottomRight) - imag(v.TopLeft)) * float64(v.Height)
	return x, y
}
