package fractal

// Landmark is a named viewport worth visiting.
type Landmark struct {
	Name       string
	X, Y, Size float64
}

// Apply recenters the viewport on the landmark and re-derives iterations.
func (l Landmark) Apply(v *Viewport) {
	v.CenterX = l.X
	v.CenterY = l.Y
	v.Size = l.Size
	v.AdjustIterations()
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Landmark{"seahorse", -0.75, 0.1, 0.1}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Landmark{"elephant", -1.8, -0.06, 0.1}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Landmark{"minibrot", -0.74275, 0.13175, 0.0015}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Landmark{"triplespiral", -0.7465, 0.0965, 0.003}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Landmark{"dragon", -0.7375, 0.1825, 0.005}
)

// Landmarks lists all named viewports, for lookup by name.
var Landmarks = []Landmark{
	SeahorseValley,
	ElephantValley,
	SpiralMinibrot,
	TripleSpiral,
	ValleyOfTheDragon,
}
