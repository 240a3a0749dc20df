package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"

	"github.com/akmonengine/xform"
	"github.com/akmonengine/xform/css"
	"github.com/akmonengine/xform/gfx"
)

var easings = map[string]xform.Easing{
	"linear":      xform.Linear,
	"ease-in":     xform.EaseIn,
	"ease-out":    xform.EaseOut,
	"ease-in-out": xform.EaseInOut,
}

func main() {
	app := kingpin.New("blendScene", "Blend between two CSS transform lists")
	app.HelpFlag.Short('h')

	var (
		from     = app.Flag("from", "Start transform, as a CSS transform list").Short('f').Default("none").Envar("XFORM_FROM").String()
		to       = app.Flag("to", "End transform, as a CSS transform list").Short('t').Default("rotate(90deg)").Envar("XFORM_TO").String()
		logLevel = app.Flag("log-level", "Log level").Default("warn").Envar("XFORM_LOG_LEVEL").Enum("debug", "info", "warn", "error")
	)

	frames := app.Command("frames", "Print every frame of the blend").Default()
	var (
		count   = frames.Flag("frames", "Number of frames").Short('n').Default("10").Envar("XFORM_FRAMES").Int()
		workers = frames.Flag("workers", "Goroutines used to sample layers").Short('w').Default("1").Envar("XFORM_WORKERS").Int()
		format  = frames.Flag("format", "Frame output format").Default("css").Envar("XFORM_FORMAT").Enum("css", "matrix")
		easing  = frames.Flag("easing", "Timing function").Default("linear").Enum("linear", "ease-in", "ease-out", "ease-in-out")
	)

	render := app.Command("render", "Draw a test card through the blended transform into a PNG file")
	var (
		progress = render.Flag("progress", "Blend progress").Short('p').Default("0.5").Float64()
		size     = render.Flag("size", "Test card size in pixels").Default("64").Int()
		interp   = render.Flag("interpolator", "Resampling filter").Default("approx-bilinear").Enum("nearest", "approx-bilinear", "bilinear", "catmull-rom")
		output   = render.Arg("output", "PNG file to write").Required().String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	setupLogger(*logLevel)

	var err error
	switch command {
	case frames.FullCommand():
		err = doFrames(*from, *to, *count, *workers, *format, *easing)
	case render.FullCommand():
		err = doRender(*from, *to, *progress, *size, *interp, *output)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	xform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func parsePair(from, to string) (gfx.Transform, gfx.Transform, error) {
	start, err := css.Parse(from)
	if err != nil {
		return gfx.Transform{}, gfx.Transform{}, fmt.Errorf("--from: %w", err)
	}
	end, err := css.Parse(to)
	if err != nil {
		return gfx.Transform{}, gfx.Transform{}, fmt.Errorf("--to: %w", err)
	}
	return start, end, nil
}

func doFrames(from, to string, count, workers int, format, easing string) error {
	if count < 1 {
		return errors.New("--frames must be at least 1")
	}
	start, end, err := parsePair(from, to)
	if err != nil {
		return err
	}

	animation := xform.NewAnimation(start, end, 1)
	animation.Easing = easings[easing]

	timeline := xform.NewTimeline(workers)
	layer := xform.NewLayer("layer", animation)
	timeline.AddLayer(layer)

	frame := 0
	timeline.Events.Subscribe(xform.ANIMATION_FRAME, func(event xform.Event) {
		e := event.(xform.AnimationFrameEvent)
		frame++
		switch format {
		case "matrix":
			fmt.Printf("frame %d progress %.3f\n%v\n", frame, e.Progress, e.Transform)
		default:
			fmt.Printf("%3d %.3f %s\n", frame, e.Progress, css.Format(e.Transform))
		}
	})
	timeline.Events.Subscribe(xform.BLEND_FAILED, func(event xform.Event) {
		e := event.(xform.BlendFailedEvent)
		fmt.Printf("blend failed at progress %.3f, snapped to %s\n", e.Progress, css.Format(e.Layer.Transform))
	})

	layer.Start()
	dt := 1 / float64(count)
	for step := 0; timeline.Running() && step <= count; step++ {
		timeline.Step(dt)
	}
	// Absorb the rounding left over by summing dt.
	if timeline.Running() {
		timeline.Step(dt)
	}

	if layer.State == xform.LayerFailed {
		return errors.New("transforms cannot be blended")
	}
	return nil
}

func doRender(from, to string, progress float64, size int, interp, output string) error {
	if size < 1 {
		return errors.New("--size must be at least 1")
	}
	start, end, err := parsePair(from, to)
	if err != nil {
		return err
	}

	transformer, ok := gfx.Interpolator(interp)
	if !ok {
		return fmt.Errorf("unknown interpolator %q", interp)
	}

	// The card pivots around its center, placed at the center of a canvas
	// twice its size.
	half := float64(size) / 2
	card := xform.NewLayer("card", xform.NewAnimation(start, end, 1))
	card.Content = gfx.RectF{Width: float64(size), Height: float64(size)}
	card.Origin = mgl64.Vec3{half, half, 0}
	card.Position = mgl64.Vec3{half, half, 0}

	card.Transform, ok = card.Animation.Sample(progress)
	if !ok {
		return errors.New("transforms cannot be blended")
	}

	canvas := gfx.RectF{Width: float64(2 * size), Height: float64(2 * size)}
	if !card.Visible(canvas) {
		return errors.New("blended card lies outside the canvas")
	}

	dst := image.NewRGBA(image.Rect(0, 0, 2*size, 2*size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if !gfx.DrawTransformed(dst, testCard(size), card.ScreenTransform(), transformer) {
		return errors.New("blended transform has no 2D equivalent")
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return err
	}
	xform.Logger().Info("rendered", "output", output, "transform", css.Format(card.Transform))
	return f.Close()
}

// testCard returns a checkerboard with a red top left corner, so that
// rotations and flips are visible.
func testCard(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/8, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
			}
			if x < cell && y < cell {
				c = color.RGBA{R: 0xff, A: 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
