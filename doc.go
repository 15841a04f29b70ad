// Package fractal computes colored raster images of escape-time fractal
// sets (Mandelbrot and Julia variants).
//
// The package is the pure computation core of an interactive explorer:
// per-pixel complex-plane iteration, smooth and stripe-average coloring,
// and a fork-join scheduler that splits full-quality frames into one row
// band per CPU. Output bytes are deterministic regardless of how the work
// is partitioned.
//
// A typical frame:
//
//	reg := fractal.NewRegistry()
//	view := fractal.DefaultViewport()
//	img := image.NewRGBA(image.Rect(0, 0, 800, 800))
//	if err := fractal.Render(img, view, reg); err != nil { ... }
//
// Render functions take the viewport by value; mutate a live Viewport
// between renders, never during one. For low-latency feedback during
// continuous interaction, RenderPreview computes one point per block and
// flood-fills the rest.
//
// Window creation, input decoding and on-screen presentation are left to
// the binaries under cmd/.
package fractal
