package tracer

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func randomUnitVec(rng *rand.Rand) types.Vec3 {
	for {
		v := types.XYZ(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
		if l := v.Len(); l > 0.1 && l <= 1 {
			return v.Normalize()
		}
	}
}

func TestReflect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		in := randomUnitVec(rng)
		n := randomUnitVec(rng)

		r := Reflect(in, n)
		if !mgl32.FloatEqualThreshold(r.Len(), 1, 1e-4) {
			t.Fatalf("[%d] expected unit reflection vector; got length %f", i, r.Len())
		}
		if !mgl32.FloatEqualThreshold(math32.Abs(r.Dot(n)), math32.Abs(in.Dot(n)), 1e-4) {
			t.Fatalf("[%d] expected |r.n| == |i.n|; got %f and %f", i, r.Dot(n), in.Dot(n))
		}
		// Tangential component is preserved and the normal one flipped.
		if !mgl32.FloatEqualThreshold(r.Dot(n), -in.Dot(n), 1e-4) {
			t.Fatalf("[%d] expected r.n == -i.n; got %f and %f", i, r.Dot(n), in.Dot(n))
		}
	}
}

func TestRefractWithUnitIOR(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := types.XYZ(0, 1, 0)
	for i := 0; i < 500; i++ {
		in := randomUnitVec(rng)

		dir, fresnel, ok := Refract(in, n, 1.0)
		if !ok {
			t.Fatalf("[%d] unexpected total internal reflection for ior 1", i)
		}
		for c := 0; c < 3; c++ {
			if math32.Abs(dir[c]-in[c]) > 1e-4 {
				t.Fatalf("[%d] expected refracted dir %v to match incident dir %v", i, dir, in)
			}
		}

		// r0 == 0 so only the grazing term remains.
		c := 1 - math32.Abs(in.Dot(n))
		if expF := c * c * c * c * c; !mgl32.FloatEqualThreshold(fresnel, expF, 1e-4) {
			t.Fatalf("[%d] expected fresnel %f; got %f", i, expF, fresnel)
		}
	}

	_, fresnel, _ := Refract(types.XYZ(0, -1, 0), n, 1.0)
	if fresnel != 0 {
		t.Fatalf("expected zero fresnel at normal incidence; got %f", fresnel)
	}

	// Near grazing incidence the direction must still pass through exactly.
	specs := []types.Vec3{
		types.XYZ(-0.74160373, 0.002605171, 0.67083305),
		types.XYZ(-0.74160373, -0.002605171, 0.67083305),
		types.XYZ(1, -1e-5, 0),
	}
	for specIndex, spec := range specs {
		in := spec.Normalize()
		dir, _, ok := Refract(in, n, 1.0)
		if !ok {
			t.Fatalf("[spec %d] unexpected total internal reflection for ior 1", specIndex)
		}
		if dir != in {
			t.Fatalf("[spec %d] expected refracted dir %v to equal incident dir %v", specIndex, dir, in)
		}
	}
}

func TestRefractSnell(t *testing.T) {
	n := types.XYZ(0, 1, 0)
	ior := float32(1.5)

	type spec struct {
		in     types.Vec3
		expTIR bool
	}
	specs := []spec{
		// entering; never TIR
		{types.XYZ(0, -1, 0), false},
		{types.XYZ(math32.Sin(1.4), -math32.Cos(1.4), 0), false},
		// exiting below the critical angle (41.8 deg)
		{types.XYZ(math32.Sin(0.5), math32.Cos(0.5), 0), false},
		// exiting above the critical angle
		{types.XYZ(math32.Sin(1.0), math32.Cos(1.0), 0), true},
	}

	for index, s := range specs {
		dir, fresnel, ok := Refract(s.in, n, ior)
		if ok == s.expTIR {
			t.Fatalf("[spec %d] expected TIR to be %t; got %t", index, s.expTIR, !ok)
		}
		if s.expTIR {
			if fresnel != 1 {
				t.Fatalf("[spec %d] expected fresnel 1 on TIR; got %f", index, fresnel)
			}
			continue
		}

		etaI, etaT := float32(1), ior
		if s.in.Dot(n) > 0 {
			etaI, etaT = etaT, etaI
		}
		sinI := math32.Sqrt(1 - s.in.Dot(n)*s.in.Dot(n))
		sinT := math32.Sqrt(1 - dir.Dot(n)*dir.Dot(n))
		if !mgl32.FloatEqualThreshold(etaI*sinI, etaT*sinT, 1e-4) {
			t.Fatalf("[spec %d] expected Snell's law to hold; got %f vs %f", index, etaI*sinI, etaT*sinT)
		}
		// The transmitted ray continues on the same side as the incident ray.
		if math32.Signbit(dir.Dot(n)) != math32.Signbit(s.in.Dot(n)) {
			t.Fatalf("[spec %d] expected transmitted dir %v to cross the surface", index, dir)
		}
		if fresnel < 0 || fresnel > 1 {
			t.Fatalf("[spec %d] expected fresnel in [0, 1]; got %f", index, fresnel)
		}
	}
}

func TestOffsetOrigin(t *testing.T) {
	p := types.XYZ(1, 1, 1)
	n := types.XYZ(0, 1, 0)

	if got := OffsetOrigin(p, n, types.XYZ(0.3, 0.5, 0)); got[1] <= p[1] {
		t.Fatalf("expected origin to move along the normal; got %v", got)
	}
	if got := OffsetOrigin(p, n, types.XYZ(0.3, -0.5, 0)); got[1] >= p[1] {
		t.Fatalf("expected origin to move against the normal; got %v", got)
	}
}

func TestCompositeWeightsSumToOne(t *testing.T) {
	values := []float32{0, 0.01, 0.2, 0.5, 0.66, 0.9, 1, 1.5}
	iors := []float32{1, 1.001, 1.33, 1.5, 2.4}
	policies := []Policy{{SuppressDielectricLocal: true}, {SuppressDielectricLocal: false}}

	for _, kr := range values {
		for _, kt := range values {
			for _, fresnel := range []float32{0, 0.04, 0.5, 1} {
				for _, ior := range iors {
					for _, tir := range []bool{false, true} {
						for _, policy := range policies {
							w := CompositeWeights(kr, kt, fresnel, ior, tir, policy)
							sum := w.Local + w.Reflection + w.Refraction
							if math32.Abs(sum-1) > 1e-5 {
								t.Fatalf("expected weights to sum to 1 for kr=%f kt=%f F=%f ior=%f tir=%t; got %+v", kr, kt, fresnel, ior, tir, w)
							}
							if w.Local < 0 || w.Reflection < 0 || w.Refraction < 0 {
								t.Fatalf("expected non-negative weights; got %+v", w)
							}
						}
					}
				}
			}
		}
	}
}

func TestCompositeWeights(t *testing.T) {
	suppress := Policy{SuppressDielectricLocal: true}

	type spec struct {
		kr, kt, fresnel, ior float32
		tir                  bool
		policy               Policy
		exp                  Weights
	}
	specs := []spec{
		// opaque diffuse
		{0, 0, 0, 1, false, suppress, Weights{Local: 1}},
		// opaque mirror-ish
		{0.25, 0, 0, 1, false, suppress, Weights{Local: 0.75, Reflection: 0.25}},
		// clear glass without reflectivity: all transmitted
		{0, 0.9, 0.04, 1.5, false, suppress, Weights{Refraction: 1}},
		// TIR on a clear dielectric reflects everything
		{0, 0.9, 1, 1.5, true, suppress, Weights{Reflection: 1}},
		{0.5, 0.9, 1, 1.5, true, suppress, Weights{Reflection: 1}},
		// the policy can be disabled
		{0, 0.9, 0.04, 1.5, false, Policy{}, Weights{Local: 0.1, Refraction: 0.9}},
		// not a dielectric: ior too low
		{0, 0.9, 0, 1, false, suppress, Weights{Local: 0.1, Refraction: 0.9}},
	}

	for index, s := range specs {
		w := CompositeWeights(s.kr, s.kt, s.fresnel, s.ior, s.tir, s.policy)
		if !mgl32.FloatEqualThreshold(w.Local, s.exp.Local, 1e-5) ||
			!mgl32.FloatEqualThreshold(w.Reflection, s.exp.Reflection, 1e-5) ||
			!mgl32.FloatEqualThreshold(w.Refraction, s.exp.Refraction, 1e-5) {
			t.Fatalf("[spec %d] expected weights %+v; got %+v", index, s.exp, w)
		}
	}

	// Near normal incidence the floor keeps a visible reflection.
	w := CompositeWeights(0.9, 0.66, 0.02, 1.33, false, suppress)
	if w.Reflection < 0.2*0.9*0.9 {
		t.Fatalf("expected reflection weight to respect the reflectivity floor; got %+v", w)
	}
}
