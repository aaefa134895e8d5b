package renderer

import (
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/types"
)

const (
	// Coefficient for converting delta cursor movements to yaw/pitch camera angles.
	DefaultRotateSensitivity float32 = 0.005

	// Coefficient for converting wheel movements to camera zoom factors.
	DefaultZoomSensitivity float32 = 0.1
)

// Input state collected by a display since the previous poll.
type Input struct {
	// Cursor movement in pixels.
	MouseDelta types.Vec2

	// Accumulated scroll wheel offset.
	WheelDelta float32

	LeftDown  bool
	RightDown bool
}

// A Display presents rendered frames and collects user input.
type Display interface {
	// Returns false once the user has requested the display to close.
	IsOpen() bool

	// Process pending events and return the input since the last poll.
	PollInput() Input

	// Show a frame of packed 0x00RRGGBB pixels in row-major order.
	Present(pixels []uint32) error

	// Release display resources.
	Close()
}

// Maps user input to camera movements. Invert factors are multiplied with
// the raw input deltas.
type CameraController struct {
	RotateSensitivity float32
	ZoomSensitivity   float32

	InvertYaw    float32
	InvertPitch  float32
	InvertScroll float32
}

// Get a controller where dragging moves the scene with the cursor and
// scrolling up zooms out.
func DefaultCameraController() CameraController {
	return CameraController{
		RotateSensitivity: DefaultRotateSensitivity,
		ZoomSensitivity:   DefaultZoomSensitivity,
		InvertYaw:         -1,
		InvertPitch:       -1,
		InvertScroll:      -1,
	}
}

// Apply input to the camera. Returns true if the camera was modified.
func (cc CameraController) Apply(cam *scene.OrbitCamera, in Input) bool {
	changed := false
	if in.LeftDown || in.RightDown {
		dx, dy := in.MouseDelta[0], in.MouseDelta[1]
		if dx != 0 || dy != 0 {
			cam.Rotate(
				cc.InvertYaw*dx*cc.RotateSensitivity,
				cc.InvertPitch*dy*cc.RotateSensitivity,
			)
			changed = true
		}
	}

	if in.WheelDelta != 0 {
		cam.Zoom(1.0 - (cc.InvertScroll*in.WheelDelta)*cc.ZoomSensitivity)
		changed = true
	}

	return changed
}
