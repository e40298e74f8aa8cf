package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sjamesr/goclock/cmd/goclock/internal/config"
	"github.com/sjamesr/goclock/pkg/clock"
	"github.com/sjamesr/goclock/pkg/dispatch"
	"github.com/sjamesr/goclock/pkg/graphics"
	"github.com/sjamesr/goclock/pkg/raster"
	"github.com/sjamesr/goclock/pkg/ticker"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Render an animated frame sequence",
		Long: `Run the clock for a number of frames, writing each frame as a
numbered PNG into the output directory.

The frame loop is driven the same way a windowed host would drive the
clock: a periodic ticker feeds the current time through a dispatch
queue, and each delivery renders one frame.

Defaults come from goclock.yaml in the working directory if present.`,
		Usage: "goclock run [flags]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	cfg, err := config.Resolve(".")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	frames := fs.Int("frames", 120, "number of frames to render")
	fps := fs.Int("fps", cfg.FPS, "tick frequency in frames per second")
	width := fs.Int("width", cfg.Width, "frame width in pixels")
	height := fs.Int("height", cfg.Height, "frame height in pixels")
	zoneName := fs.String("zone", cfg.ZoneName, "IANA time zone (empty = system local)")
	noSecond := fs.Bool("no-second-hand", !cfg.Options.DrawSecondHand, "hide the second hand")
	noSweep := fs.Bool("no-sweep", !cfg.Options.SweepSecond, "step the second hand once per second")
	elliptical := fs.Bool("elliptical", cfg.Options.AllowEllipticalClock, "let the face stretch to the canvas aspect ratio")
	noAntialias := fs.Bool("no-antialias", !cfg.Options.Antialiasing, "disable antialiased rendering")
	out := fs.String("out", "frames", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frames <= 0 {
		return fmt.Errorf("--frames must be positive")
	}
	if *fps <= 0 {
		return fmt.Errorf("--fps must be positive")
	}

	zone, err := clock.LoadZone(*zoneName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}

	face := clock.NewClockFace()
	face.SetOptions(clock.RenderOptions{
		Antialiasing:         !*noAntialias,
		DrawSecondHand:       !*noSecond,
		SweepSecond:          !*noSweep,
		AllowEllipticalClock: *elliptical,
	})
	face.SetTimeZone(zone)

	// The queue's Run goroutine (this one) plays the part of the UI
	// thread; the driver goroutine only ever talks to it via dispatch.
	queue := dispatch.NewQueue(16)
	dispatch.RegisterDispatch(queue.Dispatch)

	loop := &frameLoop{
		face:   face,
		canvas: raster.NewCanvas(*width, *height),
		out:    *out,
		total:  *frames,
	}
	driver := ticker.NewDriver(loop, time.Second/time.Duration(*fps))
	loop.finish = func() {
		driver.Stop()
		queue.Close()
	}

	fmt.Printf("Rendering %d frames at %d fps to %s...\n", *frames, *fps, *out)
	driver.Start()
	queue.Run()

	if loop.err != nil {
		return loop.err
	}
	fmt.Printf("Wrote %d frames.\n", loop.frame)
	return nil
}

// frameLoop renders one frame per tick delivery until the frame budget is
// exhausted.
type frameLoop struct {
	face   *clock.ClockFace
	canvas *raster.Canvas
	out    string
	frame  int
	total  int
	finish func()
	err    error
}

func (l *frameLoop) Tick(now time.Time) {
	if l.err != nil || l.frame >= l.total {
		return
	}
	l.face.Tick(now)
	l.canvas.Clear(graphics.ColorWhite)
	l.face.Render(l.canvas)

	path := filepath.Join(l.out, fmt.Sprintf("frame_%04d.png", l.frame))
	if err := writePNG(path, l.canvas.Image()); err != nil {
		l.err = err
		l.finish()
		return
	}
	l.frame++
	if l.frame == l.total {
		l.finish()
	}
}
