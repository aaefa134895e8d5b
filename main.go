package main

import (
	"os"
	"runtime"

	"github.com/achilleasa/diorama/cmd"
	"github.com/achilleasa/diorama/log"
	"github.com/achilleasa/diorama/tracer"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

var logger = log.New("diorama")

func init() {
	// glfw event handling must run on the main thread
	runtime.LockOSThread()
}

// Flags shared by the render and bench commands.
func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:   "width",
			Value:  800,
			Usage:  "frame width",
			EnvVar: "DIORAMA_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  600,
			Usage:  "frame height",
			EnvVar: "DIORAMA_HEIGHT",
		},
		cli.IntFlag{
			Name:   "max-depth",
			Value:  tracer.DefaultMaxDepth,
			Usage:  "max ray recursion depth (1-8)",
			EnvVar: "DIORAMA_MAX_DEPTH",
		},
		cli.IntFlag{
			Name:   "workers",
			Value:  0,
			Usage:  "number of tracer workers (0 uses one per logical cpu)",
			EnvVar: "DIORAMA_WORKERS",
		},
		cli.StringFlag{
			Name:   "scheduler",
			Value:  "perfect",
			Usage:  "block scheduler (naive or perfect)",
			EnvVar: "DIORAMA_SCHEDULER",
		},
		cli.Float64Flag{
			Name:   "shadow-floor",
			Value:  float64(tracer.DefaultShadowFloor),
			Usage:  "treat shadow rays with less visibility as fully occluded (0 disables)",
			EnvVar: "DIORAMA_SHADOW_FLOOR",
		},
		cli.BoolFlag{
			Name:   "no-dielectric-suppress",
			Usage:  "keep the local shading term of clear glass-like materials",
			EnvVar: "DIORAMA_NO_DIELECTRIC_SUPPRESS",
		},
	}
}

func main() {
	// Settings in a .env file are exposed to the flag EnvVar lookups.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warningf("could not load .env file: %v", err)
	}

	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "diorama"
	app.Usage = "ray trace voxel dioramas"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "set log level (debug, info, notice, warning, error)",
			EnvVar: "DIORAMA_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render an interactive view of a scene",
			Description: `
Open a window and continuously render the scene. Drag with the left or right
mouse button to orbit the camera and use the scroll wheel to zoom. Press
escape to exit.

If no scene is specified the built-in diorama is rendered.`,
			ArgsUsage: "[scene.json]",
			Flags: append(renderFlags(),
				cli.IntFlag{
					Name:   "max-frames",
					Value:  0,
					Usage:  "exit after rendering this many frames (0 runs until the window is closed)",
					EnvVar: "DIORAMA_MAX_FRAMES",
				},
			),
			Action: cmd.RenderInteractive,
		},
		{
			Name:  "bench",
			Usage: "benchmark headless rendering",
			Description: `
Render a number of frames without a display while orbiting the camera around
the scene and report host information and frame timings.`,
			ArgsUsage: "[scene.json]",
			Flags: append(renderFlags(),
				cli.IntFlag{
					Name:   "frames",
					Value:  32,
					Usage:  "number of frames to render",
					EnvVar: "DIORAMA_FRAMES",
				},
			),
			Action: cmd.Benchmark,
		},
		{
			Name:  "scene",
			Usage: "scene tools",
			Subcommands: []cli.Command{
				{
					Name:      "info",
					Usage:     "print scene statistics",
					ArgsUsage: "scene.json|builtin:diorama",
					Action:    cmd.ShowSceneInfo,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
