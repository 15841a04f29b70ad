package fractal

import "math"

// FractalType selects the iterated recurrence.
type FractalType int

const (
	// Standard iterates z = z^2 + c.
	Standard FractalType = iota
	// Folded folds the imaginary cross-term through abs ("burning ship" style).
	Folded
)

// ColoringMode selects how escape results are turned into a color scalar.
type ColoringMode int

const (
	// Smooth colors by the fractional (banding-free) iteration count.
	Smooth ColoringMode = iota
	// StripeAverage colors by the average of a periodic function of each
	// iterate's angle, producing textured shading.
	StripeAverage
)

const (
	// DefaultSize is the complex-plane width of the initial viewport.
	// Zoom factors are reported relative to it.
	DefaultSize = 3.0

	// MinIterations and MaxIterations bound the iteration cap, whether it
	// is set by the user or derived from the zoom level.
	MinIterations = 100
	MaxIterations = 10000
)

// Viewport is a snapshot of everything a render needs: the region of the
// complex plane, the fractal variant and the coloring parameters.
//
// Render functions take a Viewport by value. Input handlers may mutate a live
// Viewport freely between renders; the copy passed into a render call is never
// written to and never observed again.
type Viewport struct {
	// CenterX, CenterY locate the viewport center on the complex plane.
	// Size is the plane width mapped onto the pixel buffer; must be > 0.
	CenterX, CenterY float64
	Size             float64

	// Iterations is the escape-time cap, kept within
	// [MinIterations, MaxIterations].
	Iterations int

	// AutoIterations derives Iterations from the zoom level on every
	// viewport change. Any explicit iteration adjustment turns it off.
	AutoIterations bool

	Type FractalType

	// Julia switches the recurrence to Julia mode: the pixel becomes the
	// starting value and JuliaX/JuliaY the iterated constant.
	Julia          bool
	JuliaX, JuliaY float64

	Mode            ColoringMode
	StripeFrequency float64
	StripeIntensity float64
	ColorDensity    float64

	// InnerDetail populates smooth/stripe fields for points that reach the
	// iteration cap, so the set interior gets structure instead of flat
	// black. It also enables the cardioid/bulb shortcut tests.
	InnerDetail bool

	// PaletteIndex selects a ramp from the Registry, cyclically.
	PaletteIndex int
}

// DefaultViewport returns the initial explorer state: the full Mandelbrot set
// centered on (-0.5, 0).
func DefaultViewport() Viewport {
	return Viewport{
		CenterX:         -0.5,
		CenterY:         0,
		Size:            DefaultSize,
		Iterations:      128,
		AutoIterations:  true,
		JuliaX:          -0.8,
		JuliaY:          0.156,
		Mode:            StripeAverage,
		StripeFrequency: 5,
		StripeIntensity: 10,
		ColorDensity:    0.2,
	}
}

// Zoom reports the magnification relative to the default viewport size.
func (v *Viewport) Zoom() float64 {
	return DefaultSize / v.Size
}

// AdjustIterations re-derives the iteration cap from the zoom level. It does
// nothing unless auto mode is on.
func (v *Viewport) AdjustIterations() {
	if !v.AutoIterations {
		return
	}
	v.Iterations = clampIterations(int(100 * math.Log10(1+v.Zoom())))
}

// ComplexAt maps a pixel position to its complex-plane coordinate. Each axis
// is mapped independently against its own dimension, so the same function
// serves any buffer size.
func (v *Viewport) ComplexAt(px, py, width, height int) (x, y float64) {
	half := v.Size / 2
	x = v.CenterX - half + float64(px)*v.Size/float64(width)
	y = v.CenterY - half + float64(py)*v.Size/float64(height)
	return x, y
}

// PanByPixels shifts the viewport center by a pixel delta.
func (v *Viewport) PanByPixels(dx, dy, width, height int) {
	v.CenterX += float64(dx) * v.Size / float64(width)
	v.CenterY += float64(dy) * v.Size / float64(height)
}

// ZoomAt rescales the viewport by factor while keeping the complex coordinate
// under the given pixel position fixed on screen. Factor 0.5 zooms in, 2
// zooms out.
func (v *Viewport) ZoomAt(px, py, width, height int, factor float64) {
	mx, my := v.ComplexAt(px, py, width, height)
	v.CenterX = mx + (v.CenterX-mx)*factor
	v.CenterY = my + (v.CenterY-my)*factor
	v.Size *= factor
	v.AdjustIterations()
}

// Reset restores the default view region and re-derives iterations. Coloring
// settings are left alone.
func (v *Viewport) Reset() {
	v.CenterX = -0.5
	v.CenterY = 0
	v.Size = DefaultSize
	v.AdjustIterations()
}

// ToggleJulia switches between Mandelbrot and Julia mode. Entering Julia mode
// captures the given complex coordinate (typically the cursor position) as
// the seed.
func (v *Viewport) ToggleJulia(seedX, seedY float64) {
	if !v.Julia {
		v.JuliaX = seedX
		v.JuliaY = seedY
	}
	v.Julia = !v.Julia
}

// CyclePalette advances to the next of n palettes.
func (v *Viewport) CyclePalette(n int) {
	v.PaletteIndex = (v.PaletteIndex + 1) % n
}

// DoubleIterations doubles the iteration cap and disables auto mode.
func (v *Viewport) DoubleIterations() {
	v.AutoIterations = false
	v.Iterations = clampIterations(v.Iterations * 2)
}

// HalveIterations halves the iteration cap and disables auto mode.
func (v *Viewport) HalveIterations() {
	v.AutoIterations = false
	v.Iterations = clampIterations(v.Iterations / 2)
}

// SetAutoIterations toggles auto mode, re-deriving the cap when turning on.
func (v *Viewport) SetAutoIterations(on bool) {
	v.AutoIterations = on
	v.AdjustIterations()
}

// ToggleFractalType flips between the Standard and Folded recurrences.
func (v *Viewport) ToggleFractalType() {
	if v.Type == Standard {
		v.Type = Folded
	} else {
		v.Type = Standard
	}
}

// ToggleStripes flips between smooth and stripe-average coloring.
func (v *Viewport) ToggleStripes() {
	if v.Mode == Smooth {
		v.Mode = StripeAverage
	} else {
		v.Mode = Smooth
	}
}

func clampIterations(n int) int {
	return min(MaxIterations, max(MinIterations, n))
}
