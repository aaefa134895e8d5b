package scene

import "github.com/achilleasa/diorama/types"

// A point light.
type Light struct {
	Position  types.Vec3
	Color     types.Color
	Intensity float32
}

// Create a new point light. Negative intensities are clamped to 0.
func NewPointLight(pos types.Vec3, color types.Color, intensity float32) *Light {
	if intensity < 0 {
		intensity = 0
	}
	return &Light{
		Position:  pos,
		Color:     color,
		Intensity: intensity,
	}
}

// Get the light color scaled by its intensity.
func (l *Light) Radiance() types.Vec3 {
	return l.Color.Vec3().Mul(l.Intensity)
}
