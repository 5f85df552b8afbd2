package view

import "math"

const (
	// DefaultCenterX and DefaultCenterY put the main cardioid slightly
	// left of the window center so the whole set fits.
	DefaultCenterX = -0.5
	DefaultCenterY = 0.0

	// DefaultSpan is the width of the complex plane visible at startup,
	// in plane units across the full canvas width.
	DefaultSpan = 3.5

	// MinScale stops zoom-in before adjacent pixels collapse to the
	// same float64 coordinate.
	MinScale = 1e-15
)

// Viewport maps between pixel coordinates and complex-plane coordinates.
// Scale is plane units per pixel and applies to both axes, so the set is
// never stretched regardless of the canvas aspect ratio; resizing the
// window changes the visible span, not the shape.
type Viewport struct {
	CenterX float64
	CenterY float64
	Scale   float64

	maxScale float64
}

// New returns a viewport framing the whole set on a canvas of the given
// pixel width. The startup scale is also the zoom-out limit.
func New(canvasWidth int) *Viewport {
	s := DefaultSpan / float64(canvasWidth)
	return &Viewport{
		CenterX:  DefaultCenterX,
		CenterY:  DefaultCenterY,
		Scale:    s,
		maxScale: s,
	}
}

// Reset returns to the default view, re-deriving the scale from the
// current canvas width.
func (v *Viewport) Reset(canvasWidth int) {
	v.CenterX = DefaultCenterX
	v.CenterY = DefaultCenterY
	v.Scale = DefaultSpan / float64(canvasWidth)
	v.maxScale = v.Scale
}

// ScreenToPlane maps a pixel position to its complex-plane coordinate.
func (v *Viewport) ScreenToPlane(px, py float64, w, h int) (x, y float64) {
	x = v.CenterX + (px-float64(w)/2)*v.Scale
	y = v.CenterY + (py-float64(h)/2)*v.Scale
	return x, y
}

// PlaneToScreen is the inverse of ScreenToPlane.
func (v *Viewport) PlaneToScreen(x, y float64, w, h int) (px, py float64) {
	px = (x-v.CenterX)/v.Scale + float64(w)/2
	py = (y-v.CenterY)/v.Scale + float64(h)/2
	return px, py
}

// Pan shifts the view by a pixel delta: dragging the content right
// (positive dx) moves the center left. Results that are not finite
// leave the viewport untouched.
func (v *Viewport) Pan(dxPx, dyPx float64) {
	cx := v.CenterX - dxPx*v.Scale
	cy := v.CenterY - dyPx*v.Scale
	if !finite(cx) || !finite(cy) {
		return
	}
	v.CenterX = cx
	v.CenterY = cy
}

// Zoom multiplies the scale by factor (< 1 zooms in) about an anchor
// pixel, recentering so the anchor's plane coordinate stays under the
// cursor. The scale is clamped to [MinScale, startup scale]; degenerate
// factors are rejected.
func (v *Viewport) Zoom(factor, anchorPx, anchorPy float64, w, h int) {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return
	}
	ax, ay := v.ScreenToPlane(anchorPx, anchorPy, w, h)
	s := clamp(v.Scale*factor, MinScale, v.maxScale)
	if s == v.Scale || !finite(s) {
		return
	}
	v.Scale = s
	v.CenterX = ax - (anchorPx-float64(w)/2)*s
	v.CenterY = ay - (anchorPy-float64(h)/2)*s
}

// SetRegion centers the view on a plane region, scaled so the whole
// region is visible on the given canvas.
func (v *Viewport) SetRegion(r Region, w, h int) {
	sx := (r.XMax - r.XMin) / float64(w)
	sy := (r.YMax - r.YMin) / float64(h)
	s := math.Max(sx, sy)
	if !finite(s) || s <= 0 {
		return
	}
	v.CenterX = (r.XMin + r.XMax) / 2
	v.CenterY = (r.YMin + r.YMax) / 2
	v.Scale = clamp(s, MinScale, v.maxScale)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
