// Package render turns a viewport into colored pixels.
package render

import (
	"image/color"
	"runtime"
	"sync"

	"github.com/gofrac/mandelview/fractal"
	"github.com/gofrac/mandelview/view"
)

// Frame is a row-major RGBA pixel buffer. The slice layout matches what
// raylib's UpdateTexture consumes, so a rendered frame is blitted
// without a conversion pass.
type Frame struct {
	W, H int
	Pix  []color.RGBA
}

// NewFrame allocates a w×h buffer.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// Resize reallocates the buffer. Contents are discarded; every render
// overwrites the whole frame anyway.
func (f *Frame) Resize(w, h int) {
	f.W, f.H = w, h
	f.Pix = make([]color.RGBA, w*h)
}

// Options controls one frame render.
type Options struct {
	// MaxIter is the escape-time iteration bound.
	MaxIter int
	// Smooth selects fractional-count coloring instead of banded.
	Smooth bool
	// Workers is the number of goroutines the row range is split
	// across; 0 means NumCPU.
	Workers int
}

// Renderer computes full frames. It caches the palette between frames
// and rebuilds it only when the iteration bound changes.
type Renderer struct {
	pal *Palette
}

// Render recomputes every pixel of f for the given viewport. Rows are
// split into contiguous bands, one goroutine per band, joined before
// return. The viewport and options are snapshots: workers never see a
// mutation mid-frame, and the output is identical for any worker count.
func (r *Renderer) Render(f *Frame, vp view.Viewport, opt Options) {
	if opt.MaxIter < 1 {
		opt.MaxIter = 1
	}
	if r.pal == nil || r.pal.Size() != opt.MaxIter {
		r.pal = NewPalette(opt.MaxIter)
	}

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	band := (f.H + workers - 1) / workers
	if band < 1 {
		band = 1
	}

	var wg sync.WaitGroup
	for y0 := 0; y0 < f.H; y0 += band {
		y1 := min(y0+band, f.H)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			renderRows(f, vp, r.pal, opt, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func renderRows(f *Frame, vp view.Viewport, pal *Palette, opt Options, y0, y1 int) {
	for py := y0; py < y1; py++ {
		row := f.Pix[py*f.W : (py+1)*f.W]
		for px := 0; px < f.W; px++ {
			x, y := vp.ScreenToPlane(float64(px), float64(py), f.W, f.H)
			c := complex(x, y)

			var col color.RGBA
			if opt.Smooth {
				mu, escaped := fractal.EvaluateSmooth(c, opt.MaxIter)
				if escaped {
					col = pal.Smooth(mu)
				} else {
					col = Background
				}
			} else {
				s := fractal.Evaluate(c, opt.MaxIter)
				if s.Escaped {
					col = pal.At(s.Iterations)
				} else {
					col = Background
				}
			}
			row[px] = col
		}
	}
}
