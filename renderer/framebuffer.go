package renderer

import "github.com/achilleasa/diorama/types"

// A row-major buffer of packed 0x00RRGGBB pixels.
type Framebuffer struct {
	width  uint32
	height uint32
	pixels []uint32
}

func NewFramebuffer(width, height uint32) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, int(width)*int(height)),
	}
}

func (fb *Framebuffer) Width() uint32 {
	return fb.width
}

func (fb *Framebuffer) Height() uint32 {
	return fb.height
}

// Fill the framebuffer with a color.
func (fb *Framebuffer) Clear(c types.Color) {
	packed := c.Packed()
	for i := range fb.pixels {
		fb.pixels[i] = packed
	}
}

// Set the pixel at (x, y). Out of bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y uint32, c types.Color) {
	if x >= fb.width || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = c.Packed()
}

// Get the pixel at (x, y). Out of bounds reads return black.
func (fb *Framebuffer) Pixel(x, y uint32) types.Color {
	if x >= fb.width || y >= fb.height {
		return types.Color{}
	}
	return types.ColorFromPacked(fb.pixels[y*fb.width+x])
}

// Get the backing pixel slice.
func (fb *Framebuffer) Pixels() []uint32 {
	return fb.pixels
}

// Copy a row-major color buffer with the same dimensions into the framebuffer.
func (fb *Framebuffer) copyFrom(src []types.Color) {
	for i := range fb.pixels {
		fb.pixels[i] = src[i].Packed()
	}
}
