package renderer

import (
	"testing"

	"github.com/achilleasa/diorama/tracer"
)

func TestOptionsValidation(t *testing.T) {
	withOpt := func(fn func(o *Options)) Options {
		o := DefaultOptions(64, 48)
		fn(&o)
		return o
	}

	type spec struct {
		opts   Options
		expErr error
	}
	specs := []spec{
		{DefaultOptions(64, 48), nil},
		{withOpt(func(o *Options) { o.FrameW = 0 }), ErrInvalidFrameDims},
		{withOpt(func(o *Options) { o.FrameH = 0 }), ErrInvalidFrameDims},
		{withOpt(func(o *Options) { o.NumWorkers = 0 }), ErrInvalidWorkerCount},
		{withOpt(func(o *Options) { o.MaxDepth = 9 }), tracer.ErrInvalidMaxDepth},
		{withOpt(func(o *Options) { o.ShadowFloor = 1.5 }), tracer.ErrInvalidShadowFloor},
	}

	for index, s := range specs {
		if err := s.opts.Validate(); err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions(10, 20)
	if opts.NumWorkers <= 0 {
		t.Fatalf("expected a positive default worker count; got %d", opts.NumWorkers)
	}

	cfg := opts.TracerConfig()
	if cfg != tracer.DefaultConfig() {
		t.Fatalf("expected default tracer config %+v; got %+v", tracer.DefaultConfig(), cfg)
	}
}
