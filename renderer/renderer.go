package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/diorama/log"
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/tracer"
	"github.com/achilleasa/diorama/types"
)

type Renderer interface {
	// Render frame.
	Render() error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// A renderer that splits each frame into row blocks and renders them in
// parallel using a pool of cpu tracers.
type DefaultRenderer struct {
	sync.Mutex

	logger log.Logger

	// The block scheduler.
	scheduler tracer.BlockScheduler

	// Attached tracers.
	tracers []tracer.Tracer

	// Block assignments for the last frame.
	blockAssignments []uint32

	// Render options.
	options Options

	// The camera used for the next frame. This is a copy of the scene camera.
	camera scene.OrbitCamera

	// Tracers write into the scratch buffer; completed frames are copied
	// to the framebuffer.
	scratch     []types.Color
	framebuffer *Framebuffer

	stats FrameStats
}

// Create a new default renderer using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (*DefaultRenderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}

	r := &DefaultRenderer{
		logger:      log.New("renderer"),
		scheduler:   scheduler,
		options:     opts,
		camera:      *sc.Camera,
		scratch:     make([]types.Color, int(opts.FrameW)*int(opts.FrameH)),
		framebuffer: NewFramebuffer(opts.FrameW, opts.FrameH),
	}

	err := r.initTracers(sc, opts.NumWorkers)
	if err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// Create and setup the cpu tracer pool.
func (r *DefaultRenderer) initTracers(sc *scene.Scene, count int) error {
	cfg := r.options.TracerConfig()
	for idx := 0; idx < count; idx++ {
		tr, err := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", idx), cfg)
		if err != nil {
			return err
		}
		if err = tr.Setup(sc); err != nil {
			tr.Close()
			return err
		}
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	r.logger.Infof("attached %d cpu tracer(s)", len(r.tracers))
	r.blockAssignments = make([]uint32, len(r.tracers))
	return nil
}

// Shutdown renderer and any attached tracer.
func (r *DefaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Render a frame using the current camera.
func (r *DefaultRenderer) Render() error {
	return r.RenderFrame(nil)
}

// Render a frame from the point of view of cam. The renderer keeps a copy of
// cam which is used by subsequent Render calls. If cam is nil the current
// camera is used.
func (r *DefaultRenderer) RenderFrame(cam *scene.OrbitCamera) error {
	r.Lock()
	defer r.Unlock()

	if len(r.tracers) == 0 {
		return ErrNoTracers
	}
	if cam != nil {
		r.camera = *cam
	}

	start := time.Now()
	view := r.camera.View()
	frameW, frameH := r.options.FrameW, r.options.FrameH

	r.blockAssignments = r.scheduler.Schedule(r.tracers, frameH)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))
	var blockY uint32
	pending := 0
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			FrameW:   frameW,
			FrameH:   frameH,
			BlockY:   blockY,
			BlockH:   blockH,
			View:     view,
			Target:   r.scratch,
			DoneChan: doneChan,
			ErrChan:  errChan,
		})
		blockY += blockH
		pending++
	}

	// Every request reports back exactly once on either channel.
	var err error
	for ; pending > 0; pending-- {
		select {
		case <-doneChan:
		case blockErr := <-errChan:
			if err == nil {
				err = blockErr
			}
		}
	}
	if err != nil {
		return err
	}

	r.framebuffer.copyFrom(r.scratch)
	r.updateStats(time.Since(start))
	return nil
}

// Get the framebuffer with the last rendered frame.
func (r *DefaultRenderer) Framebuffer() *Framebuffer {
	return r.framebuffer
}

// Get a copy of the camera used for rendering.
func (r *DefaultRenderer) Camera() scene.OrbitCamera {
	r.Lock()
	defer r.Unlock()
	return r.camera
}

// Get render statistics.
func (r *DefaultRenderer) Stats() FrameStats {
	r.Lock()
	defer r.Unlock()
	return r.stats
}

func (r *DefaultRenderer) updateStats(renderTime time.Duration) {
	r.stats.RenderTime = renderTime
	r.stats.Tracers = make([]TracerStat, len(r.tracers))
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / float32(r.options.FrameH),
		}
		if blockH > 0 {
			stat.RenderTime = tr.Stats().RenderTime
		}
		r.stats.Tracers[idx] = stat
	}
}
