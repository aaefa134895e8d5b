package cmd

import (
	"fmt"

	"github.com/achilleasa/diorama/asset/scene/reader"
	"github.com/achilleasa/diorama/renderer"
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/tracer"
	"github.com/urfave/cli"
)

// Build renderer options from the command flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	width, height := ctx.Int("width"), ctx.Int("height")
	if width <= 0 || height <= 0 {
		return renderer.Options{}, renderer.ErrInvalidFrameDims
	}

	opts := renderer.DefaultOptions(uint32(width), uint32(height))
	opts.MaxDepth = ctx.Int("max-depth")
	opts.ShadowFloor = float32(ctx.Float64("shadow-floor"))
	opts.SuppressDielectricLocal = !ctx.Bool("no-dielectric-suppress")
	if workers := ctx.Int("workers"); workers > 0 {
		opts.NumWorkers = workers
	}

	return opts, opts.Validate()
}

// Select the block scheduler by name.
func blockScheduler(ctx *cli.Context) (tracer.BlockScheduler, error) {
	switch name := ctx.String("scheduler"); name {
	case "naive":
		return tracer.NewNaiveScheduler(), nil
	case "perfect", "":
		return tracer.NewPerfectScheduler(), nil
	default:
		return nil, fmt.Errorf("unknown block scheduler %q", name)
	}
}

// Load the scene passed as the first argument or the built-in diorama.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	sceneFile := reader.BuiltinDiorama
	if ctx.NArg() > 0 {
		sceneFile = ctx.Args().First()
	}

	logger.Noticef("loading scene: %s", sceneFile)
	return reader.ReadScene(sceneFile)
}
