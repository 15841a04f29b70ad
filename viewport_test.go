package fractal

import (
	"math"
	"testing"
)

func TestAdjustIterations(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want int
	}{
		// zoom 1: computed value 30, clamped up to the floor.
		{"default size", 3.0, 100},
		// zoom 3e10: 100*log10(1+3e10) truncates to 1047.
		{"deep zoom", 1e-10, 1047},
		// zoom 3e120 blows past the ceiling.
		{"extreme zoom", 1e-120, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultViewport()
			v.Size = tt.size
			v.AdjustIterations()
			if v.Iterations != tt.want {
				t.Errorf("size %v: iterations = %d, want %d", tt.size, v.Iterations, tt.want)
			}
		})
	}

	// Auto mode off: no touching the cap.
	v := DefaultViewport()
	v.AutoIterations = false
	v.Iterations = 777
	v.Size = 1e-10
	v.AdjustIterations()
	if v.Iterations != 777 {
		t.Errorf("auto off: iterations = %d, want 777", v.Iterations)
	}
}

func TestIterationAdjustClamps(t *testing.T) {
	v := DefaultViewport()
	v.Iterations = 6000
	v.DoubleIterations()
	if v.Iterations != 10000 {
		t.Errorf("double 6000: got %d, want 10000", v.Iterations)
	}
	if v.AutoIterations {
		t.Error("explicit adjustment left auto mode on")
	}

	v.Iterations = 150
	v.HalveIterations()
	if v.Iterations != 100 {
		t.Errorf("halve 150: got %d, want 100", v.Iterations)
	}
}

func TestZoomAtAnchorsCursor(t *testing.T) {
	v := DefaultViewport()
	v.CenterX, v.CenterY = -0.7435, 0.1314

	const px, py, w, h = 123, 456, 800, 800
	wantX, wantY := v.ComplexAt(px, py, w, h)

	for _, factor := range []float64{0.5, 2.0, 0.5, 0.5} {
		v.ZoomAt(px, py, w, h, factor)
		gotX, gotY := v.ComplexAt(px, py, w, h)
		if math.Abs(gotX-wantX) > 1e-12 || math.Abs(gotY-wantY) > 1e-12 {
			t.Fatalf("factor %v: cursor moved from (%v,%v) to (%v,%v)",
				factor, wantX, wantY, gotX, gotY)
		}
	}
}

func TestPanByPixels(t *testing.T) {
	v := DefaultViewport()
	v.PanByPixels(80, -40, 800, 800)
	if math.Abs(v.CenterX-(-0.5+0.3)) > 1e-15 {
		t.Errorf("centerX = %v, want -0.2", v.CenterX)
	}
	if math.Abs(v.CenterY-(-0.15)) > 1e-15 {
		t.Errorf("centerY = %v, want -0.15", v.CenterY)
	}
}

func TestToggleJuliaCapturesSeed(t *testing.T) {
	v := DefaultViewport()
	v.ToggleJulia(0.3, -0.01)
	if !v.Julia || v.JuliaX != 0.3 || v.JuliaY != -0.01 {
		t.Fatalf("after toggle: julia=%v seed=(%v,%v)", v.Julia, v.JuliaX, v.JuliaY)
	}

	// Leaving Julia mode keeps the seed for next time.
	v.ToggleJulia(9, 9)
	if v.Julia || v.JuliaX != 0.3 || v.JuliaY != -0.01 {
		t.Fatalf("after toggle back: julia=%v seed=(%v,%v)", v.Julia, v.JuliaX, v.JuliaY)
	}
}

func TestCyclePaletteWraps(t *testing.T) {
	v := DefaultViewport()
	v.PaletteIndex = 5
	v.CyclePalette(6)
	if v.PaletteIndex != 0 {
		t.Errorf("index = %d, want 0", v.PaletteIndex)
	}
}

func TestResetRestoresView(t *testing.T) {
	v := DefaultViewport()
	v.ZoomAt(10, 10, 800, 800, 0.5)
	v.PanByPixels(100, 100, 800, 800)
	v.PaletteIndex = 3

	v.Reset()
	if v.CenterX != -0.5 || v.CenterY != 0 || v.Size != DefaultSize {
		t.Errorf("view = (%v,%v) size %v", v.CenterX, v.CenterY, v.Size)
	}
	if v.Iterations != 100 {
		t.Errorf("iterations = %d, want 100 at zoom 1", v.Iterations)
	}
	if v.PaletteIndex != 3 {
		t.Error("reset should not touch coloring settings")
	}
}

func TestLandmarkApply(t *testing.T) {
	v := DefaultViewport()
	SpiralMinibrot.Apply(&v)
	if v.CenterX != SpiralMinibrot.X || v.Size != SpiralMinibrot.Size {
		t.Errorf("viewport = (%v,%v) size %v", v.CenterX, v.CenterY, v.Size)
	}
	if v.Iterations <= 100 {
		t.Errorf("deep landmark should raise auto iterations, got %d", v.Iterations)
	}
}
