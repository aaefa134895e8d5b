package renderer

import "errors"

var (
	ErrInvalidFrameDims   = errors.New("renderer: frame width and height must be > 0")
	ErrInvalidWorkerCount = errors.New("renderer: worker count must be > 0")
	ErrNoTracers          = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrCameraNotDefined   = errors.New("renderer: no camera defined")
	ErrNoDisplay          = errors.New("renderer: no display attached")
)
