package scene

import (
	"strings"
	"testing"

	"github.com/achilleasa/diorama/types"
)

func TestSceneBackground(t *testing.T) {
	sc := NewScene()
	if got := sc.Background(types.XYZ(0, 1, 0)); got != FlatSkyColor {
		t.Fatalf("expected flat sky color %s; got %s", FlatSkyColor, got)
	}

	sc.Skybox = testSkybox(t)
	if got := sc.Background(types.XYZ(0, 1, 0)); got != types.RGB(3, 0, 0) {
		t.Fatalf("expected +Y skybox sample; got %s", got)
	}
}

func TestSceneStats(t *testing.T) {
	sc := NewScene()
	sc.Spheres = append(sc.Spheres, NewSphere(types.Vec3{}, 1, NewSolidMaterial(types.RGB(1, 1, 1), Surface{Transparency: 0.5, IOR: 1.5})))
	textured, err := NewTexturedMaterial(NewSolidTexture(types.RGB(1, 1, 1)), Surface{})
	if err != nil {
		t.Fatal(err)
	}
	sc.Boxes = append(sc.Boxes,
		NewBox(types.Vec3{}, types.XYZ(1, 1, 1), textured),
		NewBox(types.Vec3{}, types.XYZ(1, 1, 1), NewSolidMaterial(types.RGB(1, 1, 1), Surface{Reflectivity: 0.3})),
	)
	sc.Lights = append(sc.Lights, NewPointLight(types.XYZ(0, 5, 0), types.RGB(255, 255, 255), 1))

	stats := sc.Stats()
	for _, exp := range []string{"Spheres", "Boxes", "Lights", "Skybox"} {
		if !strings.Contains(stats, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, stats)
		}
	}
}

func TestPointLightIntensityClamp(t *testing.T) {
	l := NewPointLight(types.Vec3{}, types.RGB(255, 255, 255), -2)
	if l.Intensity != 0 {
		t.Fatalf("expected negative intensity to be clamped to 0; got %f", l.Intensity)
	}
	if got := l.Radiance(); got != (types.Vec3{}) {
		t.Fatalf("expected zero radiance; got %v", got)
	}
}
