package fractal

import (
	"image/color"
	"math"
)

// interiorColor is the reserved color for points inside the set when
// inner-detail mode is off.
var interiorColor = color.RGBA{0, 0, 0, 255}

// MapColor turns an iteration result into a pixel color.
//
// Plain Interior results map to black. Everything else is reduced to a color
// scalar — stripe-average or smooth-count depending on the coloring mode —
// and linearly interpolated between adjacent palette entries. The scalar is
// wrapped with a floored modulo, so negative values (reachable through a
// negative stripe intensity) index the palette backwards from the end and
// the blend fraction stays in [0, 1).
//
// NaN scalars (e.g. from a NaN viewport center) pass through unspecial-cased
// and map to an arbitrary but crash-free color.
func MapColor(res Result, v *Viewport, p Palette) color.RGBA {
	if res.State == Interior {
		return interiorColor
	}

	var t float64
	if v.Mode == StripeAverage {
		t = v.StripeIntensity * (res.StripeSum / float64(res.Iterations))
	} else {
		t = res.Smooth * v.ColorDensity
	}

	fl := math.Floor(t)
	idx := int(fl) % len(p)
	if idx < 0 {
		idx += len(p)
	}
	return lerp(p[idx], p[(idx+1)%len(p)], t-fl)
}

// lerp blends two colors channel-wise, truncating to integer channel values.
func lerp(c1, c2 color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R) + f*(float64(c2.R)-float64(c1.R))),
		G: uint8(float64(c1.G) + f*(float64(c2.G)-float64(c1.G))),
		B: uint8(float64(c1.B) + f*(float64(c2.B)-float64(c1.B))),
		A: 255,
	}
}
