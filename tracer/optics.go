package tracer

import (
	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

const (
	// Offset applied to secondary ray origins to avoid self-intersections.
	RayBias float32 = 1e-4

	// Reflections always contribute at least this fraction of the
	// material reflectivity on transparent surfaces.
	reflectivityFloor float32 = 0.2

	// Surfaces more transparent than this with an ior above
	// clearDielectricMinIOR are classified as clear dielectrics.
	clearDielectricMinTransparency float32 = 0.5
	clearDielectricMinIOR          float32 = 1.001

	// Guard for the composite weight normalization.
	minWeightSum float32 = 1e-6
)

// Reflect an incident direction about a surface normal. The result is
// normalized.
func Reflect(i, n types.Vec3) types.Vec3 {
	return i.Sub(n.Mul(2.0 * i.Dot(n))).Normalize()
}

// Refract an incident direction through a surface with the given index of
// refraction using Snell's law. The surrounding medium is assumed to be air
// (ior 1). Rays exiting the material (i.n > 0) swap the indices and use the
// flipped normal.
//
// Refract returns the transmitted direction and the Schlick approximation of
// the Fresnel reflectance. If the ray undergoes total internal reflection ok
// is false and the returned reflectance is 1.
func Refract(i, n types.Vec3, ior float32) (dir types.Vec3, fresnel float32, ok bool) {
	i = i.Normalize()
	n = n.Normalize()

	etaI, etaT := float32(1.0), ior
	cosI := clamp(i.Dot(n), -1, 1)
	if cosI > 0 {
		etaI, etaT = etaT, etaI
		n = n.Neg()
	} else {
		cosI = -cosI
	}

	// Matching indices leave the ray undeflected.
	if etaI == etaT {
		return i, schlick(etaI, etaT, cosI), true
	}

	eta := etaI / etaT
	k := 1.0 - eta*eta*(1.0-cosI*cosI)
	if k < 0 {
		return types.Vec3{}, 1.0, false
	}

	dir = i.Mul(eta).Add(n.Mul(eta*cosI - math32.Sqrt(k))).Normalize()
	return dir, schlick(etaI, etaT, cosI), true
}

func schlick(etaI, etaT, cosI float32) float32 {
	r0 := (etaT - etaI) / (etaT + etaI)
	r0 *= r0
	c := 1.0 - cosI
	return r0 + (1.0-r0)*c*c*c*c*c
}

// Move p off the surface with normal n by RayBias, towards the side that a
// ray travelling along dir is heading to.
func OffsetOrigin(p, n, dir types.Vec3) types.Vec3 {
	if dir.Dot(n) >= 0 {
		return p.Add(n.Mul(RayBias))
	}
	return p.Sub(n.Mul(RayBias))
}

// Blend weights for the local, reflected and refracted contributions of a
// surface.
type Weights struct {
	Local      float32
	Reflection float32
	Refraction float32
}

// Returns true if a surface is treated as a clear dielectric (glass, water).
func IsClearDielectric(transparency, ior float32) bool {
	return transparency > clearDielectricMinTransparency && ior > clearDielectricMinIOR
}

// Calculate the normalized blend weights for a surface with reflectivity kr
// and transparency kt (both clamped to [0, 1]). For transparent surfaces the
// reflected share follows the fresnel term; tir indicates that refraction
// was not possible in which case the whole transmitted share is reflected.
// The returned weights always sum to 1.
func CompositeWeights(kr, kt, fresnel, ior float32, tir bool, policy Policy) Weights {
	kr = clamp(kr, 0, 1)
	kt = clamp(kt, 0, 1)

	var w Weights
	switch {
	case kt > 0 && tir:
		w.Reflection = kr + (1.0-kr)*kt
	case kt > 0:
		floor := reflectivityFloor * kr
		w.Reflection = clamp(floor+(1.0-floor)*fresnel, 0, 1) * kr
		w.Refraction = (1.0 - w.Reflection) * kt
	default:
		w.Reflection = kr
	}

	if kt > 0 && policy.SuppressDielectricLocal && IsClearDielectric(kt, ior) {
		w.Local = 0
	} else {
		w.Local = math32.Max(0, 1.0-w.Reflection-w.Refraction)
	}

	sum := w.Local + w.Reflection + w.Refraction
	if sum < minWeightSum {
		return Weights{Local: 1}
	}
	w.Local /= sum
	w.Reflection /= sum
	w.Refraction /= sum
	return w
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
