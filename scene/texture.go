package scene

import (
	"errors"

	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

var (
	ErrInvalidTextureData = errors.New("scene: texture data length does not match width*height*4")
	ErrMissingTexture     = errors.New("scene: missing texture")
)

// An immutable RGBA8 texture. Textures are shared by pointer between
// materials and intersection records and must never be modified after
// creation.
type Texture struct {
	Width  uint32
	Height uint32

	// RGBA8 pixel data, row-major with the top row first.
	Data []byte
}

// Create a new texture from raw RGBA8 data.
func NewTexture(width, height uint32, data []byte) (*Texture, error) {
	if width == 0 || height == 0 || uint64(len(data)) != uint64(width)*uint64(height)*4 {
		return nil, ErrInvalidTextureData
	}
	return &Texture{
		Width:  width,
		Height: height,
		Data:   data,
	}, nil
}

// Create a 1x1 texture filled with the given color.
func NewSolidTexture(c types.Color) *Texture {
	return &Texture{
		Width:  1,
		Height: 1,
		Data:   []byte{c.R, c.G, c.B, 255},
	}
}

// Sample the texture at uv using nearest neighbor lookups. Coordinates are
// wrapped into [0, 1) and v is inverted before being mapped to a row.
func (t *Texture) Sample(uv types.Vec2) types.Color {
	u := wrap(uv[0])
	v := wrap(uv[1])

	maxX := float32(t.Width - 1)
	maxY := float32(t.Height - 1)
	x := uint32(clamp(math32.Floor(u*maxX+0.5), 0, maxX))
	y := uint32(clamp(math32.Floor((1.0-v)*maxY+0.5), 0, maxY))

	idx := (y*t.Width + x) * 4
	return types.RGB(t.Data[idx], t.Data[idx+1], t.Data[idx+2])
}

func wrap(f float32) float32 {
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0
	}
	return f - math32.Floor(f)
}

func clamp(f, min, max float32) float32 {
	if f < min || math32.IsNaN(f) {
		return min
	}
	if f > max {
		return max
	}
	return f
}
