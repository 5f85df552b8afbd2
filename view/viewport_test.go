package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestScreenPlaneRoundTrip(t *testing.T) {
	vp := New(800)
	pixels := [][2]float64{
		{0, 0}, {400, 300}, {799, 599}, {123, 456}, {700, 10},
	}
	for _, p := range pixels {
		x, y := vp.ScreenToPlane(p[0], p[1], 800, 600)
		px, py := vp.PlaneToScreen(x, y, 800, 600)
		require.InDelta(t, p[0], px, tolerance)
		require.InDelta(t, p[1], py, tolerance)
	}
}

func TestDefaultViewFramesWholeSet(t *testing.T) {
	vp := New(800)

	// Screen center sits on the default plane center
	x, y := vp.ScreenToPlane(400, 300, 800, 600)
	require.InDelta(t, -0.5, x, tolerance)
	require.InDelta(t, 0.0, y, tolerance)

	// Real axis spans DefaultSpan units across the canvas
	left, _ := vp.ScreenToPlane(0, 300, 800, 600)
	right, _ := vp.ScreenToPlane(800, 300, 800, 600)
	require.InDelta(t, DefaultSpan, right-left, tolerance)
	require.Less(t, left, -2.0)
	require.Greater(t, right, 1.0)
}

func TestPanRoundTrip(t *testing.T) {
	vp := New(800)
	origX, origY := vp.CenterX, vp.CenterY

	vp.Pan(37, -19)
	require.NotEqual(t, origX, vp.CenterX)

	vp.Pan(-37, 19)
	require.InDelta(t, origX, vp.CenterX, tolerance)
	require.InDelta(t, origY, vp.CenterY, tolerance)
}

func TestPanDirection(t *testing.T) {
	vp := New(800)
	before := vp.CenterX

	// Dragging content to the right moves the view window left
	vp.Pan(100, 0)
	require.Less(t, vp.CenterX, before)
}

func TestZoomKeepsAnchorFixed(t *testing.T) {
	vp := New(800)
	const ax, ay = 612.0, 155.0

	wantX, wantY := vp.ScreenToPlane(ax, ay, 800, 600)
	vp.Zoom(0.9, ax, ay, 800, 600)
	gotX, gotY := vp.ScreenToPlane(ax, ay, 800, 600)

	require.InDelta(t, wantX, gotX, tolerance)
	require.InDelta(t, wantY, gotY, tolerance)

	// And again after several chained zooms
	for i := 0; i < 20; i++ {
		vp.Zoom(0.9, ax, ay, 800, 600)
	}
	gotX, gotY = vp.ScreenToPlane(ax, ay, 800, 600)
	require.InDelta(t, wantX, gotX, tolerance)
	require.InDelta(t, wantY, gotY, tolerance)
}

func TestZoomRejectsDegenerateFactors(t *testing.T) {
	vp := New(800)
	orig := *vp

	for _, factor := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		vp.Zoom(factor, 400, 300, 800, 600)
		require.Equal(t, orig, *vp, "factor %v must leave the viewport untouched", factor)
	}
}

func TestZoomClampsScale(t *testing.T) {
	vp := New(800)
	initial := vp.Scale

	// Zooming out never exceeds the startup scale
	vp.Zoom(100, 400, 300, 800, 600)
	require.Equal(t, initial, vp.Scale)

	// Zooming in bottoms out at MinScale instead of underflowing
	for i := 0; i < 10000; i++ {
		vp.Zoom(0.5, 400, 300, 800, 600)
	}
	require.GreaterOrEqual(t, vp.Scale, MinScale)
	require.Greater(t, vp.Scale, 0.0)
	require.False(t, math.IsNaN(vp.Scale))
}

func TestPanRejectsNonFiniteResult(t *testing.T) {
	vp := New(800)
	orig := *vp

	vp.Pan(math.NaN(), 0)
	require.Equal(t, orig, *vp)

	vp.Pan(math.Inf(1), math.Inf(-1))
	require.Equal(t, orig, *vp)
}

func TestSetRegionCentersLandmark(t *testing.T) {
	vp := New(800)
	vp.SetRegion(SeahorseValley, 800, 600)

	require.InDelta(t, -0.75, vp.CenterX, tolerance)
	require.InDelta(t, 0.10, vp.CenterY, tolerance)

	// Whole region visible: its corners project inside the canvas
	px, py := vp.PlaneToScreen(SeahorseValley.XMin, SeahorseValley.YMin, 800, 600)
	require.GreaterOrEqual(t, px, -tolerance)
	require.GreaterOrEqual(t, py, -tolerance)
	px, py = vp.PlaneToScreen(SeahorseValley.XMax, SeahorseValley.YMax, 800, 600)
	require.LessOrEqual(t, px, 800+tolerance)
	require.LessOrEqual(t, py, 600+tolerance)
}

func TestResetRestoresDefaults(t *testing.T) {
	vp := New(800)
	vp.Zoom(0.5, 100, 100, 800, 600)
	vp.Pan(50, 50)

	vp.Reset(800)
	require.Equal(t, DefaultCenterX, vp.CenterX)
	require.Equal(t, DefaultCenterY, vp.CenterY)
	require.InDelta(t, DefaultSpan/800, vp.Scale, tolerance)
}
