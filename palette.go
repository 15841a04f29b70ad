package fractal

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered color ramp. Ramps may have different lengths; the
// color mapper indexes them cyclically.
type Palette []color.RGBA

// Registry holds the fixed set of palettes. Construct it once at startup and
// share it read-only between renders.
type Registry struct {
	names    []string
	palettes []Palette
}

// NewRegistry builds the built-in palettes: five hand-picked ramps plus a
// generated HSV spectrum.
func NewRegistry() *Registry {
	r := &Registry{}
	r.add("blue-gold", bluegold)
	r.add("fire", fire)
	r.add("grayscale", grayscale)
	r.add("ocean", ocean)
	r.add("arctic", arctic)
	r.add("spectrum", spectrumPalette(24))
	return r
}

func (r *Registry) add(name string, p Palette) {
	r.names = append(r.names, name)
	r.palettes = append(r.palettes, p)
}

// Len reports the number of palettes.
func (r *Registry) Len() int { return len(r.palettes) }

// At returns palette i, indexed cyclically so any integer is valid.
func (r *Registry) At(i int) Palette {
	return r.palettes[r.wrap(i)]
}

// Name returns the name of palette i, indexed cyclically.
func (r *Registry) Name(i int) string {
	return r.names[r.wrap(i)]
}

func (r *Registry) wrap(i int) int {
	i %= len(r.palettes)
	if i < 0 {
		i += len(r.palettes)
	}
	return i
}

// spectrumPalette sweeps the HSV hue circle in n steps.
func spectrumPalette(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.8, 1.0)
		cr, cg, cb := c.RGB255()
		p[i] = color.RGBA{cr, cg, cb, 255}
	}
	return p
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{r, g, b, 255} }

// Classic blue-gold Mandelbrot ramp.
var bluegold = Palette{
	rgb(66, 30, 15), rgb(25, 7, 26), rgb(9, 1, 47),
	rgb(4, 4, 73), rgb(0, 7, 100), rgb(12, 44, 138),
	rgb(24, 82, 177), rgb(57, 125, 209), rgb(134, 181, 229),
	rgb(211, 236, 248), rgb(241, 233, 191), rgb(248, 201, 95),
	rgb(255, 170, 0), rgb(204, 128, 0), rgb(153, 87, 0),
}

var fire = Palette{
	rgb(0, 0, 0), rgb(20, 0, 0), rgb(40, 0, 0),
	rgb(80, 0, 0), rgb(120, 20, 0), rgb(160, 40, 0),
	rgb(200, 80, 0), rgb(240, 120, 0), rgb(255, 160, 0),
	rgb(255, 200, 0), rgb(255, 240, 40), rgb(255, 255, 100),
	rgb(255, 255, 170), rgb(255, 255, 220), rgb(255, 255, 255),
}

var grayscale = Palette{
	rgb(0, 0, 0), rgb(32, 32, 32), rgb(64, 64, 64),
	rgb(96, 96, 96), rgb(128, 128, 128), rgb(160, 160, 160),
	rgb(192, 192, 192), rgb(224, 224, 224), rgb(255, 255, 255),
}

var ocean = Palette{
	rgb(3, 13, 30), rgb(6, 26, 48), rgb(9, 38, 67),
	rgb(17, 55, 92), rgb(25, 71, 116), rgb(33, 88, 140),
	rgb(41, 105, 165), rgb(50, 138, 193), rgb(64, 174, 224),
	rgb(110, 197, 233), rgb(158, 218, 241), rgb(198, 236, 248),
	rgb(214, 249, 255), rgb(225, 252, 255), rgb(240, 255, 255),
}

var arctic = Palette{
	rgb(15, 20, 40), rgb(20, 30, 65), rgb(30, 40, 90),
	rgb(40, 60, 120), rgb(65, 90, 150), rgb(95, 130, 180),
	rgb(135, 175, 205), rgb(175, 205, 225), rgb(200, 225, 240),
	rgb(220, 235, 245), rgb(230, 243, 250), rgb(240, 250, 253),
	rgb(245, 253, 255), rgb(250, 255, 255), rgb(255, 255, 255),
}
