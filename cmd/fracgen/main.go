// Command fracgen renders fractal frames to PNG files.
//
// Single frame:
//
//	fracgen -algorithm julia -technique spectral -output julia.png
//
// Animation sequence (motion and color parameters stepped and wrapped
// into [0,1) between frames):
//
//	fracgen -frames 120 -step 0.008 -output "frame_%03d.png"
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/algo"
	"github.com/gogpu/fractal/coloring"
)

func main() {
	var (
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 600, "image height")
		output      = flag.String("output", "fractal.png", "output file; for -frames > 1 use a %d pattern")
		algorithm   = flag.String("algorithm", "julia", "julia, julia4, julia5, newton, or mandelbrot")
		technique   = flag.String("technique", "spectral", "spectral, grayscale, smooth, or palette")
		iterations  = flag.Int("iterations", 128, "iteration budget per pixel")
		motion      = flag.Float64("motion", 0, "motion parameter in [0,1)")
		colorParam  = flag.Float64("color", 0.3, "color parameter in [0,1)")
		frames      = flag.Int("frames", 1, "number of animation frames")
		step        = flag.Float64("step", 0.008, "per-frame parameter step")
		workers     = flag.Int("workers", 0, "worker count (0 = all hardware threads)")
		supersample = flag.Int("supersample", 1, "render at Nx size and downscale")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	alg, err := pickAlgorithm(*algorithm, *iterations)
	if err != nil {
		log.Fatal(err)
	}
	tech, err := pickTechnique(*technique)
	if err != nil {
		log.Fatal(err)
	}

	ss := *supersample
	if ss < 1 {
		ss = 1
	}
	renderWidth, renderHeight := *width*ss, *height*ss

	r := fractal.NewRenderer(renderWidth, renderHeight)
	defer r.Close()

	// PNG encoding runs off the render loop so the next frame can start
	// while the previous one is still being written out.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	mp, cp := *motion, *colorParam
	for i := 0; i < *frames; i++ {
		buf, err := r.Draw(cp, mp, alg,
			[]fractal.Technique{tech}, fractal.CombineFirst,
			fractal.WithWorkers(*workers))
		if err != nil {
			log.Fatalf("render frame %d: %v", i, err)
		}

		name := frameName(*output, i, *frames)
		frame := fractal.NewFrame(renderWidth, renderHeight, buf)
		g.Go(func() error {
			return savePNG(name, frame, *width, *height, ss)
		})

		mp = wrap(mp + *step)
		cp = wrap(cp + *step)
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("write frames: %v", err)
	}
	log.Printf("rendered %d frame(s), %dx%d, algorithm %s", *frames, *width, *height, *algorithm)
}

func pickAlgorithm(name string, iterations int) (fractal.Algorithm, error) {
	switch name {
	case "julia":
		return algo.NewJulia(iterations), nil
	case "julia4":
		return algo.NewJuliaExp4(iterations), nil
	case "julia5":
		return algo.NewJuliaExp5(iterations), nil
	case "newton":
		return algo.NewNewton(iterations), nil
	case "mandelbrot":
		return algo.NewMandelbrot(iterations), nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", name)
}

func pickTechnique(name string) (fractal.Technique, error) {
	switch name {
	case "spectral":
		return coloring.NewSpectral(), nil
	case "grayscale":
		return coloring.NewGrayscale(), nil
	case "smooth":
		return coloring.NewSmooth(), nil
	case "palette":
		return coloring.NewPalette(
			fractal.RGB(0, 0, 0.3),
			fractal.RGB(0.1, 0.6, 0.9),
			fractal.RGB(1, 1, 0.8),
			fractal.RGB(0.9, 0.4, 0),
		), nil
	}
	return nil, fmt.Errorf("unknown technique %q", name)
}

// frameName expands a %d pattern for animation sequences. A plain file
// name gets the frame index appended before the extension.
func frameName(pattern string, frame, frames int) string {
	if frames == 1 {
		return pattern
	}
	if strings.Contains(pattern, "%") {
		return fmt.Sprintf(pattern, frame)
	}
	ext := ""
	if i := strings.LastIndex(pattern, "."); i >= 0 {
		pattern, ext = pattern[:i], pattern[i:]
	}
	return fmt.Sprintf("%s_%04d%s", pattern, frame, ext)
}

// wrap folds a parameter back into [0, 1).
func wrap(x float64) float64 {
	return x - math.Floor(x)
}

func savePNG(name string, frame image.Image, width, height, ss int) error {
	img := frame
	if ss > 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), frame, frame.Bounds(), draw.Over, nil)
		img = dst
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
