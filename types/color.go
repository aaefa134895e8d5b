package types

import (
	"fmt"

	"github.com/chewxy/math32"
)

// An 8-bit per channel RGB color.
type Color struct {
	R, G, B uint8
}

// Define a color from its channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Convert a float color with components in [0, 1] to an 8-bit color. Values
// outside the range are clamped and NaN components map to 0.
func ColorFromVec3(v Vec3) Color {
	return Color{
		R: channelFromFloat(v[0]),
		G: channelFromFloat(v[1]),
		B: channelFromFloat(v[2]),
	}
}

// Unpack a 0x00RRGGBB value.
func ColorFromPacked(p uint32) Color {
	return Color{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// Get the color as a float vector with components in [0, 1].
func (c Color) Vec3() Vec3 {
	return Vec3{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}

// Pack color into a 0x00RRGGBB value.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func channelFromFloat(f float32) uint8 {
	if math32.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math32.Floor(f*255.0 + 0.5))
}

// Parse a color in "#rrggbb" or "rrggbb" notation.
func ParseColor(s string) (Color, error) {
	var c Color
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return c, fmt.Errorf("color: invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("color: invalid color %q: %v", s, err)
	}
	return c, nil
}
