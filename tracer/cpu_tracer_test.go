package tracer

import (
	"testing"
	"time"

	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/types"
)

func waitBlock(t *testing.T, doneChan <-chan uint32, errChan <-chan error) (uint32, error) {
	select {
	case rows := <-doneChan:
		return rows, nil
	case err := <-errChan:
		return 0, err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for block")
	}
	return 0, nil
}

func TestCPUTracerRendersBlock(t *testing.T) {
	sky := types.RGB(10, 20, 30)
	sc := scene.NewScene()
	sc.Skybox = uniformSkybox(t, sky)
	view := scene.NewOrbitCamera(types.Vec3{}, 5, 0, 0).View()

	tr, err := NewCPUTracer("cpu-0", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()

	if err = tr.Setup(nil); err != ErrNoSceneData {
		t.Fatalf("expected error %v; got %v", ErrNoSceneData, err)
	}
	if err = tr.Setup(sc); err != nil {
		t.Fatal(err)
	}

	type spec struct {
		blockY uint32
		blockH uint32
		expErr error
	}
	specs := []spec{
		{0, 2, nil},
		{2, 2, nil},
		{3, 2, ErrInvalidBlock},
	}

	target := make([]types.Color, 4*4)
	doneChan := make(chan uint32, 1)
	errChan := make(chan error, 1)
	for index, s := range specs {
		tr.Enqueue(BlockRequest{
			FrameW:   4,
			FrameH:   4,
			BlockY:   s.blockY,
			BlockH:   s.blockH,
			View:     view,
			Target:   target,
			DoneChan: doneChan,
			ErrChan:  errChan,
		})

		rows, err := waitBlock(t, doneChan, errChan)
		if err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
		if err == nil && rows != s.blockH {
			t.Fatalf("[spec %d] expected %d completed rows; got %d", index, s.blockH, rows)
		}
	}

	for i, c := range target {
		if c != sky {
			t.Fatalf("expected pixel %d to be %s; got %s", i, sky, c)
		}
	}
	if stats := tr.Stats(); stats.BlockH != 2 {
		t.Fatalf("expected last block height 2; got %d", stats.BlockH)
	}
}

func TestCPUTracerInvalidConfig(t *testing.T) {
	if _, err := NewCPUTracer("cpu-0", Config{MaxDepth: 0}); err != ErrInvalidMaxDepth {
		t.Fatalf("expected error %v; got %v", ErrInvalidMaxDepth, err)
	}
}
