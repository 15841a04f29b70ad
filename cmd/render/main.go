// render is a one-shot CLI renderer: it computes a single fractal frame at
// the requested (optionally supersampled) resolution and writes it to a PNG
// file.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fractal"
)

type options struct {
	x, y, size      float64
	width, height   int
	scale           int
	iterations      int
	palette         int
	julia           bool
	juliaX, juliaY  float64
	folded          bool
	stripes         bool
	stripeFrequency float64
	stripeIntensity float64
	density         float64
	innerDetail     bool
	landmark        string
	out             string
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an escape-time fractal to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.x, "x", -0.5, "viewport center, real part")
	f.Float64Var(&opts.y, "y", 0, "viewport center, imaginary part")
	f.Float64Var(&opts.size, "size", fractal.DefaultSize, "complex-plane width of the viewport")
	f.IntVar(&opts.width, "width", 1600, "output width in pixels")
	f.IntVar(&opts.height, "height", 1600, "output height in pixels")
	f.IntVar(&opts.scale, "scale", 1, "supersampling factor applied to width/height")
	f.IntVar(&opts.iterations, "iterations", 0, "iteration cap; 0 derives it from the zoom level")
	f.IntVar(&opts.palette, "palette", 0, "palette index (cycled)")
	f.BoolVar(&opts.julia, "julia", false, "render the Julia set for the seed instead of the Mandelbrot set")
	f.Float64Var(&opts.juliaX, "julia-x", -0.8, "Julia seed, real part")
	f.Float64Var(&opts.juliaY, "julia-y", 0.156, "Julia seed, imaginary part")
	f.BoolVar(&opts.folded, "folded", false, "use the folded (abs) recurrence variant")
	f.BoolVar(&opts.stripes, "stripes", true, "stripe-average coloring instead of smooth")
	f.Float64Var(&opts.stripeFrequency, "stripe-frequency", 5, "stripe angular frequency")
	f.Float64Var(&opts.stripeIntensity, "stripe-intensity", 10, "stripe intensity")
	f.Float64Var(&opts.density, "density", 0.2, "color density for smooth coloring")
	f.BoolVar(&opts.innerDetail, "inner-detail", false, "color set-interior points instead of flat black")
	f.StringVar(&opts.landmark, "landmark", "", "named region to render (overrides x/y/size)")
	f.StringVar(&opts.out, "out", "", "output filename; derived from the view when empty")

	return cmd
}

func run(opts *options) error {
	view, err := viewportFor(opts)
	if err != nil {
		return err
	}
	reg := fractal.NewRegistry()

	img, err := fractal.RenderScaled(view, reg, opts.width, opts.height, opts.scale)
	if err != nil {
		return err
	}

	name := opts.out
	if name == "" {
		name = exportName(view, opts)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", name, opts.width*opts.scale, opts.height*opts.scale)
	return nil
}

func viewportFor(opts *options) (fractal.Viewport, error) {
	view := fractal.DefaultViewport()
	view.CenterX = opts.x
	view.CenterY = opts.y
	view.Size = opts.size
	view.PaletteIndex = opts.palette
	view.Julia = opts.julia
	view.JuliaX = opts.juliaX
	view.JuliaY = opts.juliaY
	view.ColorDensity = opts.density
	view.StripeFrequency = opts.stripeFrequency
	view.StripeIntensity = opts.stripeIntensity
	view.InnerDetail = opts.innerDetail
	if opts.folded {
		view.Type = fractal.Folded
	}
	if !opts.stripes {
		view.Mode = fractal.Smooth
	}

	if opts.landmark != "" {
		found := false
		for _, l := range fractal.Landmarks {
			if l.Name == opts.landmark {
				l.Apply(&view)
				found = true
				break
			}
		}
		if !found {
			return view, fmt.Errorf("unknown landmark %q (have: %s)", opts.landmark, landmarkNames())
		}
	}

	if opts.iterations > 0 {
		view.AutoIterations = false
		view.Iterations = opts.iterations
	} else {
		view.AdjustIterations()
	}
	return view, nil
}

func landmarkNames() string {
	s := ""
	for i, l := range fractal.Landmarks {
		if i > 0 {
			s += ", "
		}
		s += l.Name
	}
	return s
}

func exportName(view fractal.Viewport, opts *options) string {
	mode := "mandelbrot"
	if view.Julia {
		mode = "julia"
	}
	if opts.scale > 1 {
		return fmt.Sprintf("fractal_%s_%.6f_%.6f_zoom_%.2f_hires_%dx%d_%d.png",
			mode, view.CenterX, view.CenterY, view.Zoom(),
			opts.width*opts.scale, opts.height*opts.scale, time.Now().Unix())
	}
	return fmt.Sprintf("fractal_%s_%.6f_%.6f_zoom_%.2f_%d.png",
		mode, view.CenterX, view.CenterY, view.Zoom(), time.Now().Unix())
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
