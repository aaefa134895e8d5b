package scene

import (
	"testing"

	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraZoomClamp(t *testing.T) {
	cam := NewOrbitCamera(types.XYZ(0, 0, 0), 5, 0, 0)

	for i := 0; i < 100; i++ {
		cam.Zoom(1.5)
		if cam.Radius < MinCameraRadius || cam.Radius > MaxCameraRadius {
			t.Fatalf("expected radius in [%f, %f]; got %f", MinCameraRadius, MaxCameraRadius, cam.Radius)
		}
	}
	if cam.Radius != MaxCameraRadius {
		t.Fatalf("expected radius to saturate at %f; got %f", MaxCameraRadius, cam.Radius)
	}

	for i := 0; i < 100; i++ {
		cam.Zoom(0.5)
	}
	if cam.Radius != MinCameraRadius {
		t.Fatalf("expected radius to saturate at %f; got %f", MinCameraRadius, cam.Radius)
	}

	if cam = NewOrbitCamera(types.Vec3{}, 1000, 0, 0); cam.Radius != MaxCameraRadius {
		t.Fatalf("expected constructor to clamp radius to %f; got %f", MaxCameraRadius, cam.Radius)
	}
}

func TestCameraRotateClamp(t *testing.T) {
	cam := NewOrbitCamera(types.XYZ(0, 0, 0), 5, 0, 0)

	type spec struct {
		dYaw, dPitch float32
	}
	specs := []spec{
		{0.5, 10},
		{-20, -10},
		{7, 0.3},
		{-0.1, -100},
		{100, 100},
	}

	for index, s := range specs {
		cam.Rotate(s.dYaw, s.dPitch)
		if cam.Pitch < -MaxPitch || cam.Pitch > MaxPitch {
			t.Fatalf("[spec %d] expected pitch in [%f, %f]; got %f", index, -MaxPitch, MaxPitch, cam.Pitch)
		}
		if cam.Yaw < 0 || cam.Yaw >= 2*math32.Pi {
			t.Fatalf("[spec %d] expected yaw in [0, 2pi); got %f", index, cam.Yaw)
		}
	}
}

func TestCameraBasisIsOrthonormal(t *testing.T) {
	center := types.XYZ(1, 2, 3)
	for _, pitch := range []float32{-MaxPitch, -0.7, 0, 0.3, MaxPitch} {
		for _, yaw := range []float32{0, 1, 2.5, 4, 6} {
			cam := NewOrbitCamera(center, 7, yaw, pitch)

			if d := cam.Eye().Sub(center).Len(); !mgl32.FloatEqualThreshold(d, 7, 1e-4) {
				t.Fatalf("expected eye at distance 7 from center; got %f (yaw %f, pitch %f)", d, yaw, pitch)
			}

			right, up, forward := cam.Basis()
			for _, v := range []types.Vec3{right, up, forward} {
				if !mgl32.FloatEqualThreshold(v.Len(), 1, 1e-4) {
					t.Fatalf("expected unit basis vectors; got %v (yaw %f, pitch %f)", v, yaw, pitch)
				}
			}
			if math32.Abs(right.Dot(up)) > 1e-4 || math32.Abs(right.Dot(forward)) > 1e-4 || math32.Abs(up.Dot(forward)) > 1e-4 {
				t.Fatalf("expected orthogonal basis; got right %v up %v forward %v", right, up, forward)
			}
			// right-handed: right x up == -forward
			rxu := right.Cross(up)
			for i := 0; i < 3; i++ {
				if !mgl32.FloatEqualThreshold(rxu[i], -forward[i], 1e-4) {
					t.Fatalf("expected right x up to equal -forward; got %v vs %v", rxu, forward)
				}
			}
			if up[1] < 0 {
				t.Fatalf("expected camera up vector to point upwards; got %v", up)
			}
		}
	}
}

func TestPrimaryRay(t *testing.T) {
	cam := NewOrbitCamera(types.XYZ(0, 0, 0), 4, 0, 0)
	view := cam.View()

	// Center pixel of an even sized frame looks straight ahead.
	ray := view.PrimaryRay(40, 30, 80, 60)
	if ray.Origin != view.Eye {
		t.Fatalf("expected ray origin %v; got %v", view.Eye, ray.Origin)
	}
	for i := 0; i < 3; i++ {
		if !mgl32.FloatEqualThreshold(ray.Dir[i], view.Forward[i], 1e-5) {
			t.Fatalf("expected center ray dir %v; got %v", view.Forward, ray.Dir)
		}
	}

	// Top-left pixel points up and left.
	ray = view.PrimaryRay(0, 0, 80, 60)
	if ray.Dir.Dot(view.Up) <= 0 {
		t.Fatalf("expected top row ray to point up; got %v", ray.Dir)
	}
	if ray.Dir.Dot(view.Right) >= 0 {
		t.Fatalf("expected left column ray to point left; got %v", ray.Dir)
	}
	if !mgl32.FloatEqualThreshold(ray.Dir.Len(), 1, 1e-5) {
		t.Fatalf("expected unit ray dir; got length %f", ray.Dir.Len())
	}
}
