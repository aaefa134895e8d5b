package tracer

import (
	"time"

	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/types"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The camera snapshot used for generating primary rays.
	View scene.View

	// The frame output buffer (FrameW * FrameH pixels, row-major). A tracer
	// only writes the rows of its assigned block.
	Target []types.Color

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline (single cpu core) implementation.
	SpeedEstimate() float32

	// Attach the scene to be rendered and start processing requests.
	Setup(sc *scene.Scene) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}
