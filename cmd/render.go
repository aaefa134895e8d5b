package cmd

import (
	"github.com/achilleasa/diorama/renderer"
	"github.com/urfave/cli"
)

// Render an interactive view of the scene.
func RenderInteractive(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}
	opts.MaxFrames = uint32(ctx.Int("max-frames"))

	scheduler, err := blockScheduler(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	display, err := renderer.NewGLDisplay(opts.FrameW, opts.FrameH, "diorama")
	if err != nil {
		return err
	}

	r, err := renderer.NewInteractive(sc, scheduler, display, opts)
	if err != nil {
		display.Close()
		return err
	}
	defer r.Close()

	logger.Noticef("rendering %dx%d frames using %d worker(s); drag to orbit, scroll to zoom, esc to exit", opts.FrameW, opts.FrameH, opts.NumWorkers)
	if err = r.Render(); err != nil {
		return err
	}

	logger.Noticef("last frame statistics\n%s", r.Stats())
	return nil
}
