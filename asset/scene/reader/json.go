package reader

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/achilleasa/diorama/asset"
	"github.com/achilleasa/diorama/asset/texture"
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/scene/world"
	"github.com/achilleasa/diorama/types"
)

type jsonTexture struct {
	Path      string `json:"path"`
	Rotate180 bool   `json:"rotate180,omitempty"`
	FlipH     bool   `json:"flip_h,omitempty"`
	FlipV     bool   `json:"flip_v,omitempty"`
	MaxSize   uint32 `json:"max_size,omitempty"`
}

// A material uses exactly one albedo source: a color, a texture or six face
// textures ordered -x, +x, -y, +y, -z, +z.
type jsonMaterial struct {
	Color   string   `json:"color,omitempty"`
	Texture string   `json:"texture,omitempty"`
	Faces   []string `json:"faces,omitempty"`

	Specular     float32  `json:"specular,omitempty"`
	Shininess    float32  `json:"shininess,omitempty"`
	Reflectivity float32  `json:"reflectivity,omitempty"`
	Transparency float32  `json:"transparency,omitempty"`
	IOR          *float32 `json:"ior,omitempty"`
}

// A block entry either places a single block (At) or fills the box spanned
// by From and To.
type jsonBlock struct {
	Kind     string  `json:"kind"`
	At       *[3]int `json:"at,omitempty"`
	From     *[3]int `json:"from,omitempty"`
	To       *[3]int `json:"to,omitempty"`
	Material string  `json:"material,omitempty"`
}

type jsonSphere struct {
	Center   [3]float32 `json:"center"`
	Radius   float32    `json:"radius"`
	Material string     `json:"material"`
}

type jsonLight struct {
	Position  [3]float32 `json:"position"`
	Color     string     `json:"color,omitempty"`
	Intensity float32    `json:"intensity"`
}

type jsonSkybox struct {
	PosX string `json:"px"`
	NegX string `json:"nx"`
	PosY string `json:"py"`
	NegY string `json:"ny"`
	PosZ string `json:"pz"`
	NegZ string `json:"nz"`
}

type jsonCamera struct {
	Center [3]float32 `json:"center"`
	Radius float32    `json:"radius"`
	Yaw    float32    `json:"yaw"`
	Pitch  float32    `json:"pitch"`
}

type jsonScene struct {
	// Start from the built-in block materials; entries in Registry
	// override them.
	DefaultRegistry bool `json:"default_registry,omitempty"`

	Textures  map[string]jsonTexture  `json:"textures,omitempty"`
	Materials map[string]jsonMaterial `json:"materials,omitempty"`
	Registry  map[string]string       `json:"registry,omitempty"`
	Blocks    []jsonBlock             `json:"blocks,omitempty"`
	Spheres   []jsonSphere            `json:"spheres,omitempty"`
	Lights    []jsonLight             `json:"lights,omitempty"`
	Skybox    *jsonSkybox             `json:"skybox,omitempty"`
	Camera    *jsonCamera             `json:"camera,omitempty"`
}

// Reads diorama descriptions in json format. Texture paths are resolved
// relative to the scene resource.
type jsonReader struct {
	sceneRes *asset.Resource

	textures  map[string]*scene.Texture
	materials map[string]scene.Material
}

func newJSONReader() *jsonReader {
	return &jsonReader{}
}

func (r *jsonReader) Read(res *asset.Resource) (*scene.Scene, error) {
	start := time.Now()
	r.sceneRes = res
	r.textures = make(map[string]*scene.Texture)
	r.materials = make(map[string]scene.Material)

	var def jsonScene
	dec := json.NewDecoder(res)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("could not parse scene: %v", err)
	}

	if err := r.loadTextures(def.Textures); err != nil {
		return nil, err
	}
	if err := r.buildMaterials(def.Materials); err != nil {
		return nil, err
	}

	reg, err := r.buildRegistry(def.DefaultRegistry, def.Registry)
	if err != nil {
		return nil, err
	}

	w, err := r.buildWorld(def.Blocks)
	if err != nil {
		return nil, err
	}

	sc := scene.NewScene()
	sc.Boxes = w.Bake(reg)

	for idx, s := range def.Spheres {
		if s.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be > 0", idx)
		}
		mat, err := r.material(s.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %v", idx, err)
		}
		sc.Spheres = append(sc.Spheres, scene.NewSphere(vec3(s.Center), s.Radius, mat))
	}

	for idx, l := range def.Lights {
		c := types.RGB(255, 255, 255)
		if l.Color != "" {
			if c, err = types.ParseColor(l.Color); err != nil {
				return nil, fmt.Errorf("light %d: %v", idx, err)
			}
		}
		sc.Lights = append(sc.Lights, scene.NewPointLight(vec3(l.Position), c, l.Intensity))
	}

	if def.Skybox != nil {
		if sc.Skybox, err = r.buildSkybox(def.Skybox); err != nil {
			return nil, err
		}
	}

	if def.Camera != nil {
		radius := def.Camera.Radius
		if radius == 0 {
			radius = defaultCameraRadius
		}
		sc.Camera = scene.NewOrbitCamera(vec3(def.Camera.Center), radius, def.Camera.Yaw, def.Camera.Pitch)
	} else {
		sc.Camera = scene.NewOrbitCamera(types.Vec3{}, defaultCameraRadius, defaultCameraYaw, defaultCameraPitch)
	}

	logger.Noticef("parsed scene %s in %d ms", res.Name(), time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}

const (
	defaultCameraRadius float32 = 10
	defaultCameraYaw    float32 = 1
	defaultCameraPitch  float32 = 0.35
)

func (r *jsonReader) loadTextures(defs map[string]jsonTexture) error {
	for name, def := range defs {
		if def.Path == "" {
			return fmt.Errorf("texture %q: missing path", name)
		}

		res, err := asset.NewResource(def.Path, r.sceneRes)
		if err != nil {
			return fmt.Errorf("texture %q: %v", name, err)
		}

		tex, err := texture.Load(res, texture.Options{
			MaxSize:   def.MaxSize,
			Rotate180: def.Rotate180,
			FlipH:     def.FlipH,
			FlipV:     def.FlipV,
		})
		res.Close()
		if err != nil {
			return fmt.Errorf("texture %q: %v", name, err)
		}
		r.textures[name] = tex
	}
	return nil
}

func (r *jsonReader) texture(name string) (*scene.Texture, error) {
	tex, ok := r.textures[name]
	if !ok {
		return nil, fmt.Errorf("unknown texture %q", name)
	}
	return tex, nil
}

func (r *jsonReader) material(name string) (scene.Material, error) {
	mat, ok := r.materials[name]
	if !ok {
		return scene.Material{}, fmt.Errorf("unknown material %q", name)
	}
	return mat, nil
}

func (r *jsonReader) buildMaterials(defs map[string]jsonMaterial) error {
	for name, def := range defs {
		mat, err := r.buildMaterial(def)
		if err != nil {
			return fmt.Errorf("material %q: %v", name, err)
		}
		r.materials[name] = mat
	}
	return nil
}

func (r *jsonReader) buildMaterial(def jsonMaterial) (scene.Material, error) {
	surface := scene.Surface{
		Specular:     def.Specular,
		Shininess:    def.Shininess,
		Reflectivity: def.Reflectivity,
		Transparency: def.Transparency,
		IOR:          1,
	}
	if def.IOR != nil {
		surface.IOR = *def.IOR
	}

	switch {
	case surface.Specular < 0:
		return scene.Material{}, fmt.Errorf("specular must be >= 0")
	case surface.Shininess < 0:
		return scene.Material{}, fmt.Errorf("shininess must be >= 0")
	case surface.Reflectivity < 0 || surface.Reflectivity > 1:
		return scene.Material{}, fmt.Errorf("reflectivity must be in [0, 1]")
	case surface.Transparency < 0 || surface.Transparency > 1:
		return scene.Material{}, fmt.Errorf("transparency must be in [0, 1]")
	case surface.IOR < 1:
		return scene.Material{}, fmt.Errorf("ior must be >= 1")
	}

	sources := 0
	for _, set := range []bool{def.Color != "", def.Texture != "", len(def.Faces) != 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return scene.Material{}, fmt.Errorf("exactly one of color, texture or faces must be specified")
	}

	switch {
	case def.Color != "":
		c, err := types.ParseColor(def.Color)
		if err != nil {
			return scene.Material{}, err
		}
		return scene.NewSolidMaterial(c, surface), nil
	case def.Texture != "":
		tex, err := r.texture(def.Texture)
		if err != nil {
			return scene.Material{}, err
		}
		return scene.NewTexturedMaterial(tex, surface)
	}

	if len(def.Faces) != 6 {
		return scene.Material{}, fmt.Errorf("expected 6 face textures; got %d", len(def.Faces))
	}
	var faces [6]*scene.Texture
	for idx, texName := range def.Faces {
		tex, err := r.texture(texName)
		if err != nil {
			return scene.Material{}, err
		}
		faces[idx] = tex
	}
	return scene.NewCubeMaterial(faces, surface)
}

func (r *jsonReader) buildRegistry(useDefaults bool, defs map[string]string) (*world.Registry, error) {
	reg := world.NewRegistry()
	if useDefaults {
		reg = world.DefaultRegistry()
	}

	for kindName, matName := range defs {
		kind, err := world.ParseBlockKind(kindName)
		if err != nil {
			return nil, err
		}
		mat, err := r.material(matName)
		if err != nil {
			return nil, fmt.Errorf("registry entry %q: %v", kindName, err)
		}
		reg.Set(kind, mat)
	}
	return reg, nil
}

// Apply block entries in order; later entries replace earlier ones.
func (r *jsonReader) buildWorld(defs []jsonBlock) (*world.World, error) {
	w := world.New()
	for idx, def := range defs {
		kind, err := world.ParseBlockKind(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("block %d: %v", idx, err)
		}

		var override *scene.Material
		if def.Material != "" {
			mat, err := r.material(def.Material)
			if err != nil {
				return nil, fmt.Errorf("block %d: %v", idx, err)
			}
			override = &mat
		}

		switch {
		case def.At != nil && def.From == nil && def.To == nil:
			setBlock(w, def.At[0], def.At[1], def.At[2], kind, override)
		case def.At == nil && def.From != nil && def.To != nil:
			from, to := *def.From, *def.To
			if override != nil {
				w.FillBoxWithMaterial(from[0], from[1], from[2], to[0], to[1], to[2], kind, *override)
			} else {
				w.FillBox(from[0], from[1], from[2], to[0], to[1], to[2], kind)
			}
		default:
			return nil, fmt.Errorf("block %d: specify either at or from/to", idx)
		}
	}
	return w, nil
}

func (r *jsonReader) buildSkybox(def *jsonSkybox) (*scene.Skybox, error) {
	var faces [6]*scene.Texture
	for idx, name := range []string{def.PosX, def.NegX, def.PosY, def.NegY, def.PosZ, def.NegZ} {
		tex, err := r.texture(name)
		if err != nil {
			return nil, fmt.Errorf("skybox: %v", err)
		}
		faces[idx] = tex
	}
	sky, err := scene.NewSkybox(faces[0], faces[1], faces[2], faces[3], faces[4], faces[5])
	if err != nil {
		return nil, fmt.Errorf("skybox: %v", err)
	}
	return sky, nil
}

func setBlock(w *world.World, x, y, z int, kind world.BlockKind, override *scene.Material) {
	if override != nil {
		w.SetWithMaterial(x, y, z, kind, *override)
		return
	}
	w.Set(x, y, z, kind)
}

func vec3(v [3]float32) types.Vec3 {
	return types.XYZ(v[0], v[1], v[2])
}
