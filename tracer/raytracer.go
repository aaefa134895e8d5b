package tracer

import (
	"errors"

	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

const (
	// Constant ambient term applied to the surface albedo.
	ambientFactor float32 = 0.18

	// Occluders with a transparency at or below this value block light.
	opaqueThreshold float32 = 1e-3

	// Lights closer than this to the shaded point are always visible.
	coincidentLightDist float32 = 1e-6

	DefaultMaxDepth    = 4
	MaxAllowedDepth    = 8
	DefaultShadowFloor = float32(0.02)
)

var (
	ErrInvalidMaxDepth    = errors.New("tracer: max depth must be in [1, 8]")
	ErrInvalidShadowFloor = errors.New("tracer: shadow floor must be in [0, 1)")
)

// Shading policies that are heuristics rather than physical laws.
type Policy struct {
	// Drop the local (diffuse/specular) contribution of clear dielectrics
	// (transparency > 0.5 and ior > 1.001) so that transmission dominates.
	SuppressDielectricLocal bool
}

// Ray tracer configuration.
type Config struct {
	// Rays at this recursion depth return the background color.
	MaxDepth int

	// Shadow rays whose accumulated visibility drops below this value are
	// treated as fully occluded. A zero value disables the cutoff.
	ShadowFloor float32

	Policy Policy
}

// Get the default ray tracer configuration.
func DefaultConfig() Config {
	return Config{
		MaxDepth:    DefaultMaxDepth,
		ShadowFloor: DefaultShadowFloor,
		Policy: Policy{
			SuppressDielectricLocal: true,
		},
	}
}

// Validate the configuration.
func (c Config) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > MaxAllowedDepth {
		return ErrInvalidMaxDepth
	}
	if c.ShadowFloor < 0 || c.ShadowFloor >= 1 || math32.IsNaN(c.ShadowFloor) {
		return ErrInvalidShadowFloor
	}
	return nil
}

// A recursive ray tracer for a static scene. A RayTracer never modifies the
// scene and is safe for concurrent use.
type RayTracer struct {
	scene *scene.Scene
	prims []scene.Primitive
	cfg   Config
}

// Create a new ray tracer for a scene.
func NewRayTracer(sc *scene.Scene, cfg Config) (*RayTracer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RayTracer{
		scene: sc,
		prims: sc.Primitives(),
		cfg:   cfg,
	}, nil
}

// Trace a ray and return its color.
func (rt *RayTracer) Trace(ray types.Ray, depth int) types.Color {
	return rt.trace(ray, depth, rt.Trace)
}

// Shade a ray, using next to trace any secondary rays.
func (rt *RayTracer) trace(ray types.Ray, depth int, next func(types.Ray, int) types.Color) types.Color {
	if depth >= rt.cfg.MaxDepth {
		return rt.scene.Background(ray.Dir)
	}

	hit := rt.nearestHit(ray)
	if !hit.Hit {
		return rt.scene.Background(ray.Dir)
	}

	local := rt.shadeLocal(hit, ray.Origin)

	mat := hit.Material
	kr := clamp(mat.Reflectivity, 0, 1)
	kt := clamp(mat.Transparency, 0, 1)
	if kr == 0 && kt == 0 {
		return local
	}

	ior := math32.Max(mat.IOR, 1e-3)
	n := hit.Normal

	var (
		refrDir types.Vec3
		fresnel float32
		tir     bool
	)
	if kt > 0 {
		var ok bool
		refrDir, fresnel, ok = Refract(ray.Dir, n, ior)
		tir = !ok
	}

	w := CompositeWeights(kr, kt, fresnel, ior, tir, rt.cfg.Policy)

	var reflCol, refrCol types.Color
	if w.Reflection > 0 {
		reflDir := Reflect(ray.Dir, n)
		reflCol = next(types.NewRay(OffsetOrigin(hit.Point, n, reflDir), reflDir), depth+1)
	}
	if w.Refraction > 0 {
		refrCol = next(types.NewRay(OffsetOrigin(hit.Point, n, refrDir), refrDir), depth+1)
	}

	return types.ColorFromVec3(
		local.Vec3().Mul(w.Local).
			Add(reflCol.Vec3().Mul(w.Reflection)).
			Add(refrCol.Vec3().Mul(w.Refraction)),
	)
}

// Find the nearest primitive hit along a ray.
func (rt *RayTracer) nearestHit(ray types.Ray) scene.Intersection {
	closest := scene.Miss()
	for _, prim := range rt.prims {
		hit := prim.Intersect(ray.Origin, ray.Dir)
		if hit.Hit && hit.Distance > 0 && hit.Distance < closest.Distance {
			closest = hit
		}
	}
	return closest
}

// Calculate the ambient, diffuse and specular contribution of all lights at
// a surface point seen from viewPos.
func (rt *RayTracer) shadeLocal(hit scene.Intersection, viewPos types.Vec3) types.Color {
	albedo := hit.Material.SampleAlbedo(hit.UV, hit.Face).Vec3()
	result := albedo.Mul(ambientFactor)
	viewDir := viewPos.Sub(hit.Point).Normalize()
	n := hit.Normal

	for _, light := range rt.scene.Lights {
		lightDir := light.Position.Sub(hit.Point).Normalize()

		diffuse := n.Dot(lightDir)
		if diffuse <= 0 {
			continue
		}

		vis := rt.ShadowVisibility(hit.Point, n, light.Position)
		if vis == 0 {
			continue
		}

		lightCol := light.Radiance()
		contrib := albedo.MulVec(lightCol).Mul(diffuse)

		if hit.Material.Specular > 0 {
			r := Reflect(lightDir.Neg(), n)
			spec := math32.Pow(math32.Max(0, r.Dot(viewDir)), math32.Max(1, hit.Material.Shininess))
			contrib = contrib.Add(lightCol.Mul(hit.Material.Specular * spec))
		}

		result = result.Add(contrib.Mul(vis))
	}

	return types.ColorFromVec3(result)
}

// Calculate the fraction of light emitted from lightPos that reaches point
// p with surface normal n. Semi-transparent occluders attenuate light by
// their transparency while opaque occluders block it completely.
func (rt *RayTracer) ShadowVisibility(p, n, lightPos types.Vec3) float32 {
	toLight := lightPos.Sub(p)
	dist := toLight.Len()
	if dist <= coincidentLightDist {
		return 1
	}

	lightDir := toLight.Mul(1.0 / dist)
	origin := OffsetOrigin(p, n, lightDir)
	tmax := dist - RayBias

	vis := float32(1.0)
	for _, prim := range rt.prims {
		hit := prim.Intersect(origin, lightDir)
		if !hit.Hit || hit.Distance >= tmax {
			continue
		}

		t := clamp(hit.Material.Transparency, 0, 1)
		if t <= opaqueThreshold {
			return 0
		}
		vis *= t
		if vis < rt.cfg.ShadowFloor {
			return 0
		}
	}

	return clamp(vis, 0, 1)
}
