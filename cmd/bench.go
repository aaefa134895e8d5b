package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/achilleasa/diorama/renderer"
	"github.com/chewxy/math32"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// Render frames without a display while orbiting the camera and report
// timing statistics.
func Benchmark(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	frames := ctx.Int("frames")
	if frames <= 0 {
		return fmt.Errorf("frame count must be > 0")
	}

	scheduler, err := blockScheduler(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("host information\n%s", hostInfo())

	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	cam := *sc.Camera
	yawStep := 2.0 * math32.Pi / float32(frames)

	var total, fastest, slowest time.Duration
	for frame := 0; frame < frames; frame++ {
		if err = r.RenderFrame(&cam); err != nil {
			return err
		}

		frameTime := r.Stats().RenderTime
		total += frameTime
		if frame == 0 || frameTime < fastest {
			fastest = frameTime
		}
		if frameTime > slowest {
			slowest = frameTime
		}
		logger.Debugf("frame %d rendered in %s", frame, frameTime)

		cam.Rotate(yawStep, 0)
	}

	logger.Noticef("last frame statistics\n%s", r.Stats())
	logger.Noticef("benchmark results\n%s", benchResults(opts, frames, total, fastest, slowest))
	return nil
}

func benchResults(opts renderer.Options, frames int, total, fastest, slowest time.Duration) string {
	avg := total / time.Duration(frames)
	fps := 0.0
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame size", "Workers", "Max depth", "Frames", "Avg", "Min", "Max", "FPS"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", opts.FrameW, opts.FrameH),
		fmt.Sprintf("%d", opts.NumWorkers),
		fmt.Sprintf("%d", opts.MaxDepth),
		fmt.Sprintf("%d", frames),
		avg.String(),
		fastest.String(),
		slowest.String(),
		fmt.Sprintf("%.2f", fps),
	})
	table.Render()
	return buf.String()
}

// Describe the host cpu and memory.
func hostInfo() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"CPU", "Clock", "Logical cores", "Memory", "Go"})

	cpuName, clock := "unknown", "-"
	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		cpuName = cpuInfo[0].ModelName
		clock = fmt.Sprintf("%.2f GHz", cpuInfo[0].Mhz/1000)
	} else if err != nil {
		logger.Warningf("could not query cpu information: %v", err)
	}

	cores := fmt.Sprintf("%d", runtime.NumCPU())
	if count, err := cpu.Counts(true); err == nil {
		cores = fmt.Sprintf("%d", count)
	}

	memory := "-"
	if memInfo, err := mem.VirtualMemory(); err == nil {
		memory = fmt.Sprintf("%.1f GiB", float64(memInfo.Total)/(1<<30))
	} else {
		logger.Warningf("could not query memory information: %v", err)
	}

	table.Append([]string{cpuName, clock, cores, memory, runtime.Version()})
	table.Render()
	return buf.String()
}
