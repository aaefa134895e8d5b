package scene

import (
	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

// Skybox face indices.
const (
	SkyPosX = iota
	SkyNegX
	SkyPosY
	SkyNegY
	SkyPosZ
	SkyNegZ
)

// A cube-mapped environment sampled by rays that escape the scene. Faces are
// ordered +X, -X, +Y, -Y, +Z, -Z.
type Skybox struct {
	Faces [6]*Texture
}

// Create a new skybox. All six faces must be defined.
func NewSkybox(px, nx, py, ny, pz, nz *Texture) (*Skybox, error) {
	faces := [6]*Texture{px, nx, py, ny, pz, nz}
	for _, tex := range faces {
		if tex == nil {
			return nil, ErrMissingTexture
		}
	}
	return &Skybox{Faces: faces}, nil
}

// Sample the skybox along a direction. The face is selected by the
// dominant axis (ties resolved in X, Y, Z order).
func (s *Skybox) Sample(dir types.Vec3) types.Color {
	face, uv := skyboxFaceUV(dir)
	return s.Faces[face].Sample(uv)
}

func skyboxFaceUV(dir types.Vec3) (int, types.Vec2) {
	d := dir.Normalize()
	x, y, z := d[0], d[1], d[2]
	ax, ay, az := math32.Abs(x), math32.Abs(y), math32.Abs(z)

	var (
		face int
		u, v float32
	)
	switch {
	case ax == 0 && ay == 0 && az == 0:
		face = SkyPosX
	case ax >= ay && ax >= az:
		if x > 0 {
			face, u, v = SkyPosX, -z/ax, y/ax
		} else {
			face, u, v = SkyNegX, z/ax, y/ax
		}
	case ay >= az:
		if y > 0 {
			face, u, v = SkyPosY, x/ay, z/ay
		} else {
			face, u, v = SkyNegY, x/ay, -z/ay
		}
	default:
		if z > 0 {
			face, u, v = SkyPosZ, x/az, y/az
		} else {
			face, u, v = SkyNegZ, -x/az, y/az
		}
	}

	// [-1, 1] -> [0, 1]; textures are addressed with v=0 on the top row.
	s := (u + 1.0) * 0.5
	t := 1.0 - (v+1.0)*0.5
	return face, types.XY(s, t)
}
