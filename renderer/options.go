package renderer

import (
	"runtime"

	"github.com/achilleasa/diorama/tracer"
	"github.com/shirou/gopsutil/cpu"
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Rays at this recursion depth return the background.
	MaxDepth int

	// Number of cpu tracers.
	NumWorkers int

	// Shadow visibility cutoff; 0 disables it.
	ShadowFloor float32

	// Drop the local shading term of clear dielectrics.
	SuppressDielectricLocal bool

	// Input handling for interactive sessions.
	Controller CameraController

	// Stop interactive sessions after this many frames; 0 renders until the
	// display is closed.
	MaxFrames uint32
}

// Get the default renderer options for a frameW x frameH frame.
func DefaultOptions(frameW, frameH uint32) Options {
	cfg := tracer.DefaultConfig()
	return Options{
		FrameW:                  frameW,
		FrameH:                  frameH,
		MaxDepth:                cfg.MaxDepth,
		NumWorkers:              DefaultWorkerCount(),
		ShadowFloor:             cfg.ShadowFloor,
		SuppressDielectricLocal: cfg.Policy.SuppressDielectricLocal,
		Controller:              DefaultCameraController(),
	}
}

// Get the number of logical cpus on this host.
func DefaultWorkerCount() int {
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}

// Get the ray tracer configuration for these options.
func (o Options) TracerConfig() tracer.Config {
	return tracer.Config{
		MaxDepth:    o.MaxDepth,
		ShadowFloor: o.ShadowFloor,
		Policy: tracer.Policy{
			SuppressDielectricLocal: o.SuppressDielectricLocal,
		},
	}
}

// Validate options.
func (o Options) Validate() error {
	if o.FrameW == 0 || o.FrameH == 0 {
		return ErrInvalidFrameDims
	}
	if o.NumWorkers <= 0 {
		return ErrInvalidWorkerCount
	}
	return o.TracerConfig().Validate()
}
