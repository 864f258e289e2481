package fractal

import (
	"image"
	"image/color"
)

// Frame wraps a Draw output buffer as an image.Image without copying.
// The buffer stays in BGRA order; Frame translates on access, so a
// presentation layer (or image/png, or x/image/draw) can consume draw
// output directly.
type Frame struct {
	width  int
	height int
	data   []byte // BGRA, 4 bytes per pixel
}

// NewFrame wraps a BGRA buffer produced by Draw. The buffer length
// must be width*height*4.
func NewFrame(width, height int, data []byte) *Frame {
	if len(data) != width*height*4 {
		panic("fractal: NewFrame buffer length does not match dimensions")
	}
	return &Frame{width: width, height: height, data: data}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the underlying BGRA buffer.
func (f *Frame) Data() []byte {
	return f.data
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.NRGBA{}
	}
	i := (y*f.width + x) * 4
	return color.NRGBA{
		R: f.data[i+2],
		G: f.data[i+1],
		B: f.data[i+0],
		A: f.data[i+3],
	}
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}
