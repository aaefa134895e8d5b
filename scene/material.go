package scene

import "github.com/achilleasa/diorama/types"

// An AlbedoSource provides the base surface color at a surface location. It
// is implemented by SolidAlbedo, TextureAlbedo and CubeAlbedo.
type AlbedoSource interface {
	Sample(uv types.Vec2, face Face) types.Color
}

// A constant albedo color.
type SolidAlbedo struct {
	Color types.Color
}

func (a SolidAlbedo) Sample(_ types.Vec2, _ Face) types.Color {
	return a.Color
}

// An albedo sampled from a single texture.
type TextureAlbedo struct {
	Texture *Texture
}

func (a TextureAlbedo) Sample(uv types.Vec2, _ Face) types.Color {
	return a.Texture.Sample(uv)
}

// An albedo sampled from one of six textures selected by box face. The
// textures are indexed by Face (NegX, PosX, NegY, PosY, NegZ, PosZ).
type CubeAlbedo struct {
	Faces [6]*Texture
}

// Sample the texture for the given face. Intersections without a face tag
// (e.g. spheres) use the +Z texture.
func (a CubeAlbedo) Sample(uv types.Vec2, face Face) types.Color {
	if face == NoFace {
		face = PosZ
	}
	return a.Faces[face.Index()].Sample(uv)
}

// Shading parameters shared by all albedo sources.
type Surface struct {
	Specular     float32
	Shininess    float32
	Reflectivity float32
	Transparency float32
	IOR          float32
}

// Defines a scene material.
type Material struct {
	Albedo AlbedoSource
	Surface
}

// Create a material with a solid albedo.
func NewSolidMaterial(c types.Color, surface Surface) Material {
	return Material{Albedo: SolidAlbedo{Color: c}, Surface: surface}
}

// Create a material with a single albedo texture.
func NewTexturedMaterial(tex *Texture, surface Surface) (Material, error) {
	if tex == nil {
		return Material{}, ErrMissingTexture
	}
	return Material{Albedo: TextureAlbedo{Texture: tex}, Surface: surface}, nil
}

// Create a material with one albedo texture per box face. All six faces
// must be defined.
func NewCubeMaterial(faces [6]*Texture, surface Surface) (Material, error) {
	for _, tex := range faces {
		if tex == nil {
			return Material{}, ErrMissingTexture
		}
	}
	return Material{Albedo: CubeAlbedo{Faces: faces}, Surface: surface}, nil
}

// The black, fully diffuse material attached to misses.
func DefaultMaterial() Material {
	return NewSolidMaterial(types.RGB(0, 0, 0), Surface{Shininess: 1, IOR: 1})
}

// Get the albedo color at a surface location.
func (m Material) SampleAlbedo(uv types.Vec2, face Face) types.Color {
	if m.Albedo == nil {
		return types.Color{}
	}
	return m.Albedo.Sample(uv, face)
}

// Returns true if the albedo is sampled from one or more textures.
func (m Material) IsTextured() bool {
	switch m.Albedo.(type) {
	case TextureAlbedo, CubeAlbedo:
		return true
	}
	return false
}
