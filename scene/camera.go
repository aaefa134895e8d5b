package scene

import (
	"fmt"

	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinCameraRadius float32 = 0.5
	MaxCameraRadius float32 = 50.0

	// Pitch is kept this far away from the poles to avoid a degenerate basis.
	pitchMargin float32 = 0.01
	MaxPitch            = math32.Pi/2 - pitchMargin
)

// The world up direction used to build the camera basis.
var upWorld = mgl32.Vec3{0, 1, 0}

// A camera orbiting a pivot point. The eye position is defined in spherical
// coordinates (radius, yaw, pitch) around Center.
type OrbitCamera struct {
	Center types.Vec3
	Radius float32
	Yaw    float32
	Pitch  float32
}

// Create a new orbit camera. Radius, yaw and pitch are brought into their
// valid ranges.
func NewOrbitCamera(center types.Vec3, radius, yaw, pitch float32) *OrbitCamera {
	c := &OrbitCamera{
		Center: center,
		Radius: mgl32.Clamp(radius, MinCameraRadius, MaxCameraRadius),
	}
	c.Rotate(yaw, pitch)
	return c
}

// Get the eye position.
func (c *OrbitCamera) Eye() types.Vec3 {
	cosPitch := math32.Cos(c.Pitch)
	return c.Center.Add(types.XYZ(
		c.Radius*cosPitch*math32.Cos(c.Yaw),
		c.Radius*math32.Sin(c.Pitch),
		c.Radius*cosPitch*math32.Sin(c.Yaw),
	))
}

// Get the right-handed orthonormal camera basis.
func (c *OrbitCamera) Basis() (right, up, forward types.Vec3) {
	fwd := mgl32.Vec3(c.Center.Sub(c.Eye())).Normalize()
	r := fwd.Cross(upWorld).Normalize()
	u := r.Cross(fwd).Normalize()
	return types.Vec3(r), types.Vec3(u), types.Vec3(fwd)
}

// Rotate the camera around its pivot. Yaw wraps into [0, 2pi) and pitch is
// clamped to [-MaxPitch, MaxPitch].
func (c *OrbitCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw = wrapAngle(c.Yaw + dYaw)
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// Scale the orbit radius by factor. The radius is clamped to
// [MinCameraRadius, MaxCameraRadius].
func (c *OrbitCamera) Zoom(factor float32) {
	c.Radius = mgl32.Clamp(c.Radius*factor, MinCameraRadius, MaxCameraRadius)
}

// Get an immutable snapshot of the camera eye and basis.
func (c *OrbitCamera) View() View {
	right, up, forward := c.Basis()
	return View{
		Eye:     c.Eye(),
		Right:   right,
		Up:      up,
		Forward: forward,
	}
}

func (c *OrbitCamera) String() string {
	return fmt.Sprintf(
		"Orbit camera:\ncenter : (%3.3f, %3.3f, %3.3f)\nradius : %3.3f\nyaw    : %3.3f\npitch  : %3.3f",
		c.Center[0], c.Center[1], c.Center[2], c.Radius, c.Yaw, c.Pitch,
	)
}

// A camera snapshot used to generate primary rays for a frame.
type View struct {
	Eye     types.Vec3
	Right   types.Vec3
	Up      types.Vec3
	Forward types.Vec3
}

// Generate the primary ray through pixel (x, y) of a frameW x frameH frame.
// The image plane sits one unit in front of the eye and spans [-1, 1]
// vertically.
func (v View) PrimaryRay(x, y, frameW, frameH uint32) types.Ray {
	w := float32(frameW)
	h := float32(frameH)

	sx := ((2.0*float32(x))/w - 1.0) * (w / h)
	sy := -((2.0*float32(y))/h - 1.0)

	dir := v.Right.Mul(sx).Add(v.Up.Mul(sy)).Add(v.Forward)
	return types.NewRay(v.Eye, dir)
}

func wrapAngle(a float32) float32 {
	twoPi := 2.0 * math32.Pi
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
