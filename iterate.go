package fractal

import "math"

// escapeRadiusSq is the squared magnitude beyond which an orbit counts as
// escaped. A radius of 100 (rather than the minimal 2) keeps the smooth
// iteration formula continuous across palette cycles.
const escapeRadiusSq = 100.0 * 100.0

// ResultState classifies the outcome of iterating a point.
type ResultState uint8

const (
	// Escaped means the orbit left the escape radius before the cap.
	Escaped ResultState = iota
	// Interior means the point is treated as inside the set; only the
	// state field is meaningful.
	Interior
	// InteriorDetail is a capped point that additionally carries the
	// smooth/stripe fields, produced only in inner-detail mode.
	InteriorDetail
)

// Result is the outcome of iterating one point.
type Result struct {
	State ResultState

	// Iterations is the integer escape count; for InteriorDetail it holds
	// the cap. Zero-valued for plain Interior.
	Iterations int

	// Smooth is the fractional iteration count,
	// i + 1 - log(log(|z|^2)/2)/log 2, evaluated at escape or at the cap.
	Smooth float64

	// StripeSum accumulates sin(atan2(zi, zr)*frequency)^2 per iterate.
	// Only populated when stripe coloring is on.
	StripeSum float64
}

// Iterate classifies the complex point (cr, ci) under the viewport's fractal
// parameters. It reads v and touches no other state, so it is safe to call
// from any number of goroutines at once.
func Iterate(cr, ci float64, v *Viewport) Result {
	zr, zi := 0.0, 0.0
	ar, ai := cr, ci
	if v.Julia {
		zr, zi = cr, ci
		ar, ai = v.JuliaX, v.JuliaY
	}

	// Shortcut tests for the two largest interior components. Both are
	// strict subsets of the set, so they can only misclassify by falling
	// through to the loop, never by declaring an escaping point interior.
	if v.InnerDetail && !v.Julia && v.Type == Standard {
		q := (cr-0.25)*(cr-0.25) + ci*ci
		if q*(q+(cr-0.25)) < 0.25*ci*ci {
			return Result{State: Interior}
		}
		if (cr+1)*(cr+1)+ci*ci < 0.0625 {
			return Result{State: Interior}
		}
	}

	stripes := v.Mode == StripeAverage
	zr2, zi2 := zr*zr, zi*zi
	var stripeSum float64
	i := 0

	for zr2+zi2 < escapeRadiusSq {
		if v.Type == Standard {
			zi = 2*zr*zi + ai
		} else {
			zi = 2*math.Abs(zr*zi) + ai
		}
		zr = zr2 - zi2 + ar
		zr2 = zr * zr
		zi2 = zi * zi
		if stripes {
			s := math.Sin(math.Atan2(zi, zr) * v.StripeFrequency)
			stripeSum += s * s
		}
		i++
		if i >= v.Iterations {
			if v.InnerDetail {
				return Result{
					State:      InteriorDetail,
					Iterations: i,
					Smooth:     smoothCount(i, zr2+zi2),
					StripeSum:  stripeSum,
				}
			}
			return Result{State: Interior}
		}
	}

	return Result{
		State:      Escaped,
		Iterations: i,
		Smooth:     smoothCount(i, zr2+zi2),
		StripeSum:  stripeSum,
	}
}

// smoothCount refines the integer escape count into a continuous one. magSq
// is the squared orbit magnitude at escape, which the loop condition
// guarantees is >= escapeRadiusSq, keeping both logs defined.
func smoothCount(i int, magSq float64) float64 {
	return float64(i) + 1 - math.Log(math.Log(magSq)/2)/math.Ln2
}
