// Command fractalzoom renders an animated Mandelbrot zoom to PNG frames.
//
// It plays the host role: it creates the image target, registers it in
// the resource pool, advances the time value frame by frame, and hands
// the parameter block to the renderer. It is the same division of labor a
// compute-shader host has around its dispatch loop.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/resource"
)

func main() {
	var (
		width       = flag.Int("width", 1280, "output width in pixels")
		height      = flag.Int("height", 720, "output height in pixels")
		frames      = flag.Int("frames", 60, "number of frames to render")
		startTime   = flag.Float64("start", 1.0, "animation time of the first frame (must be > 0)")
		step        = flag.Float64("step", 0.05, "time advance per frame")
		workers     = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		supersample = flag.Int("supersample", 0, "supersampling factor (0/1 = off)")
		hud         = flag.Bool("hud", false, "stamp frame number and time onto each frame")
		output      = flag.String("output", "frame_%04d.png", "output file pattern")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *startTime <= 0 {
		log.Fatal("start time must be strictly positive (the zoom divides by time²)")
	}

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pool := resource.NewPool()
	id, err := pool.CreateImage(resource.ImageInfo{
		Label:  "backbuffer",
		Width:  uint32(*width),
		Height: uint32(*height),
	})
	if err != nil {
		log.Fatalf("Failed to create target: %v", err)
	}

	opts := []fractal.RendererOption{fractal.WithWorkers(*workers)}
	if *supersample > 1 {
		opts = append(opts, fractal.WithSupersample(*supersample))
	}
	r := fractal.NewRenderer(pool, opts...)
	defer r.Close()

	begin := time.Now()
	for frame := 0; frame < *frames; frame++ {
		t := float32(*startTime + float64(frame)**step)

		frameStart := time.Now()
		err := r.RenderFrame(fractal.PushConstants{
			Width:  uint32(*width),
			Height: uint32(*height),
			Target: id.Pack(true),
			Time:   t,
		})
		if err != nil {
			log.Fatalf("Render failed at frame %d: %v", frame, err)
		}
		elapsed := time.Since(frameStart)

		img, err := pool.Image(id)
		if err != nil {
			log.Fatalf("Lost render target: %v", err)
		}

		if *hud {
			stampHUD(img, frame, t, elapsed)
		}

		path := fmt.Sprintf(*output, frame)
		if err := img.SavePNG(path); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
	}

	log.Printf("Rendered %d frames (%dx%d) in %v\n",
		*frames, *width, *height, time.Since(begin).Round(time.Millisecond))
}

// stampHUD draws a one-line status into the frame's top-left corner.
func stampHUD(img *resource.Image, frame int, t float32, elapsed time.Duration) {
	d := font.Drawer{
		Dst:  img.RGBA(),
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 16),
	}
	d.DrawString(fmt.Sprintf("frame %04d  t=%.3f  %s", frame, t, elapsed.Round(time.Millisecond)))
}
