package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background colors points that never escape — the interior of the set.
var Background = color.RGBA{A: 255}

// Palette is a deterministic lookup table from escape iteration count
// to color: hue sweeps the full circle from red back to red as counts
// rise from 0 to maxIter, so adjacent counts land on distinct bands.
type Palette struct {
	colors []color.RGBA
}

// NewPalette builds the table for iteration counts 0..maxIter-1.
func NewPalette(maxIter int) *Palette {
	if maxIter < 1 {
		maxIter = 1
	}
	p := &Palette{colors: make([]color.RGBA, maxIter)}
	for i := range p.colors {
		p.colors[i] = rampColor(float64(i), float64(maxIter))
	}
	return p
}

// Size reports the iteration bound the table was built for.
func (p *Palette) Size() int { return len(p.colors) }

// At returns the color for an escaped point's iteration count.
func (p *Palette) At(iterations int) color.RGBA {
	if iterations < 0 {
		iterations = 0
	}
	if iterations >= len(p.colors) {
		iterations = len(p.colors) - 1
	}
	return p.colors[iterations]
}

// Smooth maps a fractional iteration count onto the same ramp without
// quantizing to a band.
func (p *Palette) Smooth(mu float64) color.RGBA {
	max := float64(len(p.colors))
	if mu < 0 {
		mu = 0
	}
	if mu > max {
		mu = max
	}
	return rampColor(mu, max)
}

func rampColor(iter, maxIter float64) color.RGBA {
	t := 1 - iter/maxIter
	hue := t * 360
	if hue >= 360 {
		hue = 0
	}
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
