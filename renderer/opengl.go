package renderer

import (
	"errors"
	"fmt"

	"github.com/achilleasa/diorama/types"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var ErrInvalidFrameSize = errors.New("renderer: frame size does not match display size")

// An opengl window that displays frames by uploading them to a texture and
// blitting the texture to the default framebuffer.
//
// glfw requires all calls to be made from the main thread; the caller must
// lock the main goroutine to its OS thread.
type glDisplay struct {
	width  uint32
	height uint32

	// opengl handles
	window    *glfw.Window
	fbTexture uint32
	texFbo    uint32

	// input state
	lastCursorPos types.Vec2
	havePos       bool
	wheelDelta    float32
}

// Create a new opengl display with a non-resizable width x height window.
func NewGLDisplay(width, height uint32, title string) (Display, error) {
	if width == 0 || height == 0 {
		return nil, ErrInvalidFrameDims
	}

	d := &glDisplay{
		width:  width,
		height: height,
	}

	if err := d.initGL(title); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

func (d *glDisplay) initGL(title string) error {
	var err error
	if err = glfw.Init(); err != nil {
		return fmt.Errorf("renderer: failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	d.window, err = glfw.CreateWindow(int(d.width), int(d.height), title, nil, nil)
	if err != nil {
		return fmt.Errorf("renderer: could not create opengl window: %s", err.Error())
	}
	d.window.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err = gl.Init(); err != nil {
		return fmt.Errorf("renderer: could not init opengl: %s", err.Error())
	}

	// Setup texture for image data
	gl.GenTextures(1, &d.fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.fbTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(d.width), int32(d.height), 0, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &d.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, d.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, d.fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	// Bind event callbacks
	d.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	d.window.SetKeyCallback(d.onKeyEvent)
	d.window.SetScrollCallback(d.onScrollEvent)

	return nil
}

func (d *glDisplay) IsOpen() bool {
	return d.window != nil && !d.window.ShouldClose()
}

func (d *glDisplay) PollInput() Input {
	glfw.PollEvents()

	in := Input{
		WheelDelta: d.wheelDelta,
		LeftDown:   d.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		RightDown:  d.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
	}
	d.wheelDelta = 0

	xPos, yPos := d.window.GetCursorPos()
	pos := types.XY(float32(xPos), float32(yPos))
	if d.havePos {
		in.MouseDelta = pos.Sub(d.lastCursorPos)
	}
	d.lastCursorPos = pos
	d.havePos = true

	return in
}

// Upload packed 0x00RRGGBB pixels and display them. Row 0 is the top of the
// window.
func (d *glDisplay) Present(pixels []uint32) error {
	if uint64(len(pixels)) != uint64(d.width)*uint64(d.height) {
		return ErrInvalidFrameSize
	}

	w, h := int32(d.width), int32(d.height)
	gl.BindTexture(gl.TEXTURE_2D, d.fbTexture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(pixels))

	// Texture rows start at the bottom so flip while blitting
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, d.texFbo)
	gl.BlitFramebuffer(0, 0, w, h, 0, h, w, 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	d.window.SwapBuffers()
	return nil
}

func (d *glDisplay) Close() {
	if d.window != nil {
		d.window.SetShouldClose(true)
		d.window.Destroy()
		d.window = nil
	}
	glfw.Terminate()
}

func (d *glDisplay) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeyEscape {
		w.SetShouldClose(true)
	}
}

func (d *glDisplay) onScrollEvent(w *glfw.Window, xOff, yOff float64) {
	d.wheelDelta += float32(yOff)
}
