package renderer

import (
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/tracer"
)

// A renderer that displays frames in a Display and moves the camera in
// response to user input.
type interactiveRenderer struct {
	*DefaultRenderer

	display Display
	camera  *scene.OrbitCamera

	frameCount uint32
}

// Create a new interactive renderer that presents frames to display. The
// scene camera is copied and the scene itself is never modified.
func NewInteractive(sc *scene.Scene, scheduler tracer.BlockScheduler, display Display, opts Options) (Renderer, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}

	base, err := NewDefault(sc, scheduler, opts)
	if err != nil {
		return nil, err
	}

	cam := *sc.Camera
	return &interactiveRenderer{
		DefaultRenderer: base,
		display:         display,
		camera:          &cam,
	}, nil
}

// Run the render loop until the display is closed or the frame limit is
// reached.
func (r *interactiveRenderer) Render() error {
	maxFrames := r.options.MaxFrames
	for r.display.IsOpen() {
		if maxFrames != 0 && r.frameCount >= maxFrames {
			break
		}

		in := r.display.PollInput()
		if r.options.Controller.Apply(r.camera, in) {
			r.logger.Debugf("camera moved: yaw %3.3f pitch %3.3f radius %3.3f", r.camera.Yaw, r.camera.Pitch, r.camera.Radius)
		}

		if err := r.RenderFrame(r.camera); err != nil {
			return err
		}
		r.frameCount++

		if err := r.display.Present(r.framebuffer.Pixels()); err != nil {
			return err
		}
	}

	r.logger.Noticef("rendered %d frame(s)", r.frameCount)
	return nil
}

func (r *interactiveRenderer) Close() {
	r.DefaultRenderer.Close()
	r.display.Close()
}
