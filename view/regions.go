package view

// Region is a rectangular window into the complex plane.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	SeahorseValley = Region{
		XMin: -0.8,
		XMax: -0.7,
		YMin: 0.05,
		YMax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		XMin: -1.85,
		XMax: -1.75,
		YMin: -0.10,
		YMax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		XMin: -0.7435,
		XMax: -0.7420,
		YMin: 0.1310,
		YMax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		XMin: -0.7480,
		XMax: -0.7450,
		YMin: 0.0950,
		YMax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		XMin: -0.7400,
		XMax: -0.7350,
		YMin: 0.1800,
		YMax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		XMin: -1.7390,
		XMax: -1.7375,
		YMin: -0.0235,
		YMax: -0.0220,
	}
)

// Landmark pairs a region with a display name for the HUD and log.
type Landmark struct {
	Name   string
	Region Region
}

// Landmarks is the jump list bound to the number keys, in key order.
var Landmarks = []Landmark{
	{"Seahorse Valley", SeahorseValley},
	{"Elephant Valley", ElephantValley},
	{"Spiral Minibrot", SpiralMinibrot},
	{"Triple Spiral", TripleSpiral},
	{"Valley of the Dragon", ValleyOfTheDragon},
	{"Minibrot in a Mini-Spiral", MinibrotInMiniSpiral},
}
