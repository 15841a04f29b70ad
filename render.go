package fractal

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"
)

const (
	// fallbackBands is used when the CPU count cannot be detected.
	fallbackBands = 8

	// PreviewDownscale is the block size used for interactive previews.
	PreviewDownscale = 12

	// ExportScale is the default supersampling factor for high-resolution
	// exports.
	ExportScale = 3
)

// Render fills img with a full-quality frame of the viewport, splitting the
// rows into one contiguous band per CPU and joining before returning. Bands
// never overlap, and every pixel depends only on its own coordinate, so the
// output bytes are identical for any band count.
//
// The caller owns img and must not touch it until Render returns.
func Render(img *image.RGBA, v Viewport, reg *Registry) error {
	if err := validate(img, &v); err != nil {
		return err
	}
	bands := runtime.NumCPU()
	if bands <= 0 {
		bands = fallbackBands
	}

	start := time.Now()
	renderBands(img, &v, reg.At(v.PaletteIndex), bands)
	Logger().Debug("full render",
		"width", img.Rect.Dx(), "height", img.Rect.Dy(),
		"bands", bands, "iterations", v.Iterations,
		"elapsed", time.Since(start))
	return nil
}

// renderBands forks one goroutine per contiguous row band and joins. The
// last band absorbs the remainder rows.
func renderBands(img *image.RGBA, v *Viewport, pal Palette, bands int) {
	height := img.Rect.Dy()
	perBand := height / bands

	var wg sync.WaitGroup
	for i := 0; i < bands; i++ {
		startRow := i * perBand
		endRow := startRow + perBand
		if i == bands-1 {
			endRow = height
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			renderRegion(img, v, pal, startRow, endRow)
		}()
	}
	wg.Wait()
}

// RenderRegion fills rows [startRow, endRow) of img. Row indices are
// relative to the buffer, not the viewport. Disjoint regions of the same
// buffer may be rendered concurrently.
func RenderRegion(img *image.RGBA, v Viewport, pal Palette, startRow, endRow int) {
	renderRegion(img, &v, pal, startRow, endRow)
}

func renderRegion(img *image.RGBA, v *Viewport, pal Palette, startRow, endRow int) {
	width := img.Rect.Dx()
	pixelSize := v.Size / float64(width)
	half := v.Size / 2

	for y := startRow; y < endRow; y++ {
		ci := v.CenterY - half + float64(y)*pixelSize
		row := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]

		for x := 0; x < width; x++ {
			cr := v.CenterX - half + float64(x)*pixelSize
			c := MapColor(Iterate(cr, ci, v), v, pal)
			o := x * 4
			row[o] = c.R
			row[o+1] = c.G
			row[o+2] = c.B
			row[o+3] = 255
		}
	}
}

// RenderPreview fills img with a coarse block-sampled frame: one point is
// computed per block-aligned position and flood-filled over the block,
// clipped at the buffer edges. It runs on the calling goroutine; at the
// intended block sizes it is cheap enough not to need the fork-join.
//
// block = 1 degenerates to the exact full-resolution output.
func RenderPreview(img *image.RGBA, v Viewport, reg *Registry, block int) error {
	if err := validate(img, &v); err != nil {
		return err
	}
	if block < 1 {
		block = 1
	}
	pal := reg.At(v.PaletteIndex)

	width := img.Rect.Dx()
	height := img.Rect.Dy()
	pixelSize := v.Size / float64(width)
	half := v.Size / 2

	for y := 0; y < height; y += block {
		ci := v.CenterY - half + float64(y)*pixelSize

		for x := 0; x < width; x += block {
			cr := v.CenterX - half + float64(x)*pixelSize
			c := MapColor(Iterate(cr, ci, &v), &v, pal)

			for by := 0; by < block && y+by < height; by++ {
				row := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y+by):]
				for bx := 0; bx < block && x+bx < width; bx++ {
					o := (x + bx) * 4
					row[o] = c.R
					row[o+1] = c.G
					row[o+2] = c.B
					row[o+3] = 255
				}
			}
		}
	}
	return nil
}

// RenderScaled allocates and renders a buffer scale times larger than the
// given dimensions while holding the same viewport, raising the
// plane-sampling density for high-resolution export.
func RenderScaled(v Viewport, reg *Registry, width, height, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("render: scale %d, must be >= 1", scale)
	}
	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	if err := Render(img, v, reg); err != nil {
		return nil, err
	}
	return img, nil
}

// validate rejects inputs that would make the pixel mapping meaningless and
// clamps the iteration cap into its documented bounds.
func validate(img *image.RGBA, v *Viewport) error {
	if img == nil || img.Rect.Dx() <= 0 || img.Rect.Dy() <= 0 {
		return fmt.Errorf("render: empty pixel buffer")
	}
	if !(v.Size > 0) {
		return fmt.Errorf("render: viewport size %v, must be > 0", v.Size)
	}
	v.Iterations = clampIterations(v.Iterations)
	return nil
}
