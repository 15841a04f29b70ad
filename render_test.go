package fractal

import (
	"bytes"
	"image"
	"testing"
)

func renderTestViewport() Viewport {
	v := DefaultViewport()
	v.AutoIterations = false
	v.Iterations = 128
	v.Mode = Smooth
	return v
}

func TestBandCountIndependence(t *testing.T) {
	v := renderTestViewport()
	pal := NewRegistry().At(0)

	want := image.NewRGBA(image.Rect(0, 0, 64, 64))
	renderBands(want, &v, pal, 1)

	for _, bands := range []int{2, 4, 8} {
		got := image.NewRGBA(image.Rect(0, 0, 64, 64))
		renderBands(got, &v, pal, bands)
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Errorf("%d bands: output differs from single band", bands)
		}
	}
}

func TestRegionSplitMatchesSingleCall(t *testing.T) {
	// The 4x4 default view rendered in one call must equal the same grid
	// rendered as two 2-row bands.
	v := renderTestViewport()
	pal := NewRegistry().At(0)

	whole := image.NewRGBA(image.Rect(0, 0, 4, 4))
	RenderRegion(whole, v, pal, 0, 4)

	split := image.NewRGBA(image.Rect(0, 0, 4, 4))
	RenderRegion(split, v, pal, 0, 2)
	RenderRegion(split, v, pal, 2, 4)

	if !bytes.Equal(whole.Pix, split.Pix) {
		t.Error("two-band render differs from single call")
	}
}

func TestPreviewBlockOneIsExact(t *testing.T) {
	v := renderTestViewport()
	reg := NewRegistry()

	full := image.NewRGBA(image.Rect(0, 0, 32, 32))
	RenderRegion(full, v, reg.At(v.PaletteIndex), 0, 32)

	preview := image.NewRGBA(image.Rect(0, 0, 32, 32))
	if err := RenderPreview(preview, v, reg, 1); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(full.Pix, preview.Pix) {
		t.Error("blockSize=1 preview differs from full-resolution render")
	}
}

func TestPreviewCoversEdges(t *testing.T) {
	// Block size not dividing the dimensions: the clipped flood fill must
	// still write every pixel, alpha included.
	v := renderTestViewport()
	reg := NewRegistry()

	img := image.NewRGBA(image.Rect(0, 0, 37, 29))
	if err := RenderPreview(img, v, reg, 12); err != nil {
		t.Fatal(err)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d: alpha %d, want 255", i/4, img.Pix[i])
		}
	}
}

func TestRenderWritesOpaquePixels(t *testing.T) {
	v := renderTestViewport()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	if err := Render(img, v, NewRegistry()); err != nil {
		t.Fatal(err)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d: alpha %d, want 255", i/4, img.Pix[i])
		}
	}
}

func TestRenderValidation(t *testing.T) {
	reg := NewRegistry()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	bad := renderTestViewport()
	bad.Size = 0
	if err := Render(img, bad, reg); err == nil {
		t.Error("size=0: want error")
	}
	bad.Size = -1
	if err := RenderPreview(img, bad, reg, PreviewDownscale); err == nil {
		t.Error("preview size=-1: want error")
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if err := Render(empty, renderTestViewport(), reg); err == nil {
		t.Error("empty buffer: want error")
	}

	if _, err := RenderScaled(renderTestViewport(), reg, 8, 8, 0); err == nil {
		t.Error("scale=0: want error")
	}
}

func TestRenderScaledSupersamples(t *testing.T) {
	v := renderTestViewport()
	reg := NewRegistry()

	img, err := RenderScaled(v, reg, 6, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if img.Rect.Dx() != 18 || img.Rect.Dy() != 12 {
		t.Fatalf("bounds = %v, want 18x12", img.Rect)
	}

	// Supersampling re-samples the plane: the scaled render's top-left
	// pixel maps a finer coordinate, so it must equal a direct render at
	// the larger resolution, not an upscale of the small one.
	direct := image.NewRGBA(image.Rect(0, 0, 18, 12))
	RenderRegion(direct, v, reg.At(v.PaletteIndex), 0, 12)
	if !bytes.Equal(img.Pix, direct.Pix) {
		t.Error("scaled render differs from direct render at the same resolution")
	}
}
