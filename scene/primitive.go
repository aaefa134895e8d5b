package scene

import (
	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

// Minimum accepted hit distance. Hits closer than this are rejected to
// avoid self-intersections.
const HitBias float32 = 0.001

// Identifies the axis-aligned face of a box that was hit by a ray.
type Face uint8

const (
	NoFace Face = iota
	NegX
	PosX
	NegY
	PosY
	NegZ
	PosZ
)

// Get a 0-based face index in NegX, PosX, NegY, PosY, NegZ, PosZ order. Must
// not be called for NoFace.
func (f Face) Index() int {
	return int(f) - 1
}

func (f Face) String() string {
	switch f {
	case NegX:
		return "-X"
	case PosX:
		return "+X"
	case NegY:
		return "-Y"
	case PosY:
		return "+Y"
	case NegZ:
		return "-Z"
	case PosZ:
		return "+Z"
	}
	return "none"
}

// The result of a ray/primitive intersection test.
type Intersection struct {
	Hit      bool
	Distance float32
	Point    types.Vec3
	Normal   types.Vec3
	UV       types.Vec2
	Face     Face

	// A copy of the material of the primitive that was hit.
	Material Material
}

// Create a miss record.
func Miss() Intersection {
	return Intersection{
		Distance: math32.Inf(1),
		Material: DefaultMaterial(),
	}
}

// The Primitive interface is implemented by all ray-intersectable scene
// geometry (Sphere and Box).
type Primitive interface {
	// Intersect a ray with the primitive. The direction must be unit length.
	Intersect(origin, dir types.Vec3) Intersection
}
