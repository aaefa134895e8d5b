package scene

import (
	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

// Tolerance used when matching a hit point against the box faces.
const faceEpsilon float32 = 1e-4

// An axis-aligned box.
type Box struct {
	Min      types.Vec3
	Max      types.Vec3
	Material Material
}

// Create new box primitive from its min and max corners.
func NewBox(min, max types.Vec3, material Material) *Box {
	return &Box{
		Min:      min,
		Max:      max,
		Material: material,
	}
}

// Intersect the box using the slab method.
func (b *Box) Intersect(origin, dir types.Vec3) Intersection {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		inv := 1.0 / dir[axis]
		t0 := (b.Min[axis] - origin[axis]) * inv
		t1 := (b.Max[axis] - origin[axis]) * inv

		// 0 * Inf: the ray runs parallel to and exactly on a slab plane.
		if math32.IsNaN(t0) || math32.IsNaN(t1) {
			return Miss()
		}
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return Miss()
		}
	}

	var t float32
	switch {
	case tmin > HitBias:
		t = tmin
	case tmax > HitBias:
		t = tmax
	default:
		return Miss()
	}

	point := origin.Add(dir.Mul(t))
	normal, uv, face := b.faceAt(point)

	return Intersection{
		Hit:      true,
		Distance: t,
		Point:    point,
		Normal:   normal,
		UV:       uv,
		Face:     face,
		Material: b.Material,
	}
}

// Match a surface point against the six faces (in -X, +X, -Y, +Y, -Z, +Z
// order) and derive its face-local uv coordinates.
func (b *Box) faceAt(p types.Vec3) (types.Vec3, types.Vec2, Face) {
	local := p.Sub(b.Min).DivVec(b.Max.Sub(b.Min))
	lx := clamp(local[0], 0, 1)
	ly := clamp(local[1], 0, 1)
	lz := clamp(local[2], 0, 1)

	switch {
	case math32.Abs(p[0]-b.Min[0]) < faceEpsilon:
		return types.XYZ(-1, 0, 0), types.XY(lz, 1-ly), NegX
	case math32.Abs(p[0]-b.Max[0]) < faceEpsilon:
		return types.XYZ(1, 0, 0), types.XY(1-lz, 1-ly), PosX
	case math32.Abs(p[1]-b.Min[1]) < faceEpsilon:
		return types.XYZ(0, -1, 0), types.XY(lx, 1-lz), NegY
	case math32.Abs(p[1]-b.Max[1]) < faceEpsilon:
		return types.XYZ(0, 1, 0), types.XY(lx, lz), PosY
	case math32.Abs(p[2]-b.Min[2]) < faceEpsilon:
		return types.XYZ(0, 0, -1), types.XY(lx, 1-ly), NegZ
	}
	return types.XYZ(0, 0, 1), types.XY(1-lx, 1-ly), PosZ
}
