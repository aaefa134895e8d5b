package tracer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/diorama/log"
	"github.com/achilleasa/diorama/scene"
)

var (
	ErrNoSceneData  = errors.New("tracer: no scene data attached")
	ErrInvalidBlock = errors.New("tracer: block request exceeds frame bounds")
	ErrTracerBusy   = errors.New("tracer: tracer is busy processing another block")
)

// A tracer that renders blocks on a dedicated goroutine.
type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	cfg Config
	rt  *RayTracer

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *Stats
}

// Create a new cpu tracer. The tracer does not accept block requests until
// Setup is called.
func NewCPUTracer(id string, cfg Config) (Tracer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		cfg:          cfg,
		blockReqChan: make(chan BlockRequest, 1),
		stats:        &Stats{},
	}, nil
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Each cpu tracer renders on a single core.
func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

// Attach scene and start the worker goroutine.
func (tr *cpuTracer) Setup(sc *scene.Scene) error {
	if sc == nil {
		return ErrNoSceneData
	}

	rt, err := NewRayTracer(sc, tr.cfg)
	if err != nil {
		return err
	}

	tr.Lock()
	tr.rt = rt
	tr.Unlock()

	tr.startWorker()
	return nil
}

// Shutdown the worker goroutine.
func (tr *cpuTracer) Close() {
	tr.Lock()
	closeChan := tr.closeChan
	tr.closeChan = nil
	tr.rt = nil
	tr.Unlock()

	if closeChan != nil {
		close(closeChan)
		tr.wg.Wait()
	}
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		tr.logger.Error("request processor did not receive block request")
		blockReq.ErrChan <- ErrTracerBusy
	}
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.Lock()
	defer tr.Unlock()

	// Worker already running
	if tr.closeChan != nil {
		return
	}
	tr.closeChan = make(chan struct{})
	closeChan := tr.closeChan

	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		close(readyChan)
		for {
			select {
			case blockReq := <-tr.blockReqChan:
				startTime := time.Now()
				if err := tr.renderBlock(&blockReq); err != nil {
					blockReq.ErrChan <- err
					continue
				}

				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-closeChan:
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Trace the primary rays for every pixel in the requested block.
func (tr *cpuTracer) renderBlock(blockReq *BlockRequest) error {
	tr.Lock()
	rt := tr.rt
	tr.Unlock()

	if rt == nil {
		return ErrNoSceneData
	}

	frameW, frameH := blockReq.FrameW, blockReq.FrameH
	if blockReq.BlockY+blockReq.BlockH > frameH || uint64(len(blockReq.Target)) < uint64(frameW)*uint64(frameH) {
		return ErrInvalidBlock
	}

	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		row := blockReq.Target[y*frameW : (y+1)*frameW]
		for x := uint32(0); x < frameW; x++ {
			row[x] = rt.Trace(blockReq.View.PrimaryRay(x, y, frameW, frameH), 0)
		}
	}

	return nil
}
