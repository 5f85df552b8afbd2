package main

import (
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gofrac/mandelview/fractal"
	"github.com/gofrac/mandelview/render"
	"github.com/gofrac/mandelview/view"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fontSize     = 10
	hudHeight    = 24

	baseMaxIter   = 100
	iterStep      = 50
	maxIterCap    = 2000
	iterPerDecade = 60

	zoomStep       = 0.9
	orbitThickness = 2
	markerRadius   = 4
)

// Interaction modes
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModeTracing
)

// Application state
type App struct {
	// View and pixels
	vp       *view.Viewport
	frame    *render.Frame
	renderer render.Renderer
	texture  rl.Texture2D
	dirty    bool

	// Interaction
	mode     Mode
	maxIter  int
	adaptive bool
	smooth   bool

	// Orbit overlay, kept in plane coordinates and reprojected each
	// frame so it stays glued to the fractal under pan/zoom
	orbit     []complex128
	traceC    complex128
	haveTrace bool
}

// Initialize application
func NewApp(w, h int) *App {
	app := &App{
		vp:       view.New(w),
		frame:    render.NewFrame(w, h),
		maxIter:  baseMaxIter,
		adaptive: true,
		dirty:    true,
	}
	app.reloadTexture()
	return app
}

// Recreate the GPU texture to match the frame size
func (app *App) reloadTexture() {
	if app.texture.ID != 0 {
		rl.UnloadTexture(app.texture)
	}
	img := rl.GenImageColor(app.frame.W, app.frame.H, rl.Black)
	app.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
}

// Scale-adaptive iteration bound: deeper zoom, more iterations
func adaptiveMaxIter(vp *view.Viewport, canvasWidth int) int {
	span := vp.Scale * float64(canvasWidth)
	depth := math.Log10(view.DefaultSpan / span)
	if depth < 0 {
		depth = 0
	}
	n := baseMaxIter + int(depth*iterPerDecade)
	if n > maxIterCap {
		n = maxIterCap
	}
	return n
}

func (app *App) refreshMaxIter(w int) {
	if !app.adaptive {
		return
	}
	if n := adaptiveMaxIter(app.vp, w); n != app.maxIter {
		app.maxIter = n
		app.dirty = true
	}
}

// Recompute the orbit trace for the point under the cursor
func (app *App) traceAt(mousePos rl.Vector2, w, h int) {
	x, y := app.vp.ScreenToPlane(float64(mousePos.X), float64(mousePos.Y), w, h)
	c := complex(x, y)
	if c == app.traceC && app.haveTrace {
		return
	}
	app.traceC = c
	app.orbit = fractal.Trace(c, app.maxIter)
	app.haveTrace = true
}

// Update application
func (app *App) Update() {
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()

	if rl.IsWindowResized() {
		app.frame.Resize(w, h)
		app.reloadTexture()
		app.dirty = true
	}

	mousePos := rl.GetMousePosition()

	// Zoom with mouse wheel, towards the cursor, in any mode
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		factor := math.Pow(zoomStep, float64(wheel))
		app.vp.Zoom(factor, float64(mousePos.X), float64(mousePos.Y), w, h)
		app.refreshMaxIter(w)
		app.dirty = true
	}

	// Pointer state machine: left drag pans, right button traces
	switch app.mode {
	case ModeIdle:
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.mode = ModePanning
		} else if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			app.mode = ModeTracing
			app.traceAt(mousePos, w, h)
		}
	case ModePanning:
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			delta := rl.GetMouseDelta()
			if delta.X != 0 || delta.Y != 0 {
				app.vp.Pan(float64(delta.X), float64(delta.Y))
				app.dirty = true
			}
		} else {
			app.mode = ModeIdle
		}
	case ModeTracing:
		if rl.IsMouseButtonDown(rl.MouseRightButton) {
			app.traceAt(mousePos, w, h)
		} else {
			app.mode = ModeIdle
		}
	}

	// Landmark jumps on number keys
	for i, lm := range view.Landmarks {
		if rl.IsKeyPressed(rl.KeyOne + int32(i)) {
			app.vp.SetRegion(lm.Region, w, h)
			app.refreshMaxIter(w)
			app.dirty = true
			log.Printf("jumped to %s", lm.Name)
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		app.vp.Reset(w)
		app.refreshMaxIter(w)
		app.haveTrace = false
		app.dirty = true
	}
	if rl.IsKeyPressed(rl.KeyS) {
		app.smooth = !app.smooth
		app.dirty = true
	}
	if rl.IsKeyPressed(rl.KeyA) {
		app.adaptive = !app.adaptive
		app.refreshMaxIter(w)
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		app.adaptive = false
		if app.maxIter > iterStep {
			app.maxIter -= iterStep
			app.dirty = true
		}
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		app.adaptive = false
		if app.maxIter < maxIterCap {
			app.maxIter += iterStep
			app.dirty = true
		}
	}
}

// Draw application
func (app *App) Draw() {
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()

	if app.dirty {
		app.renderer.Render(app.frame, *app.vp, render.Options{
			MaxIter: app.maxIter,
			Smooth:  app.smooth,
		})
		rl.UpdateTexture(app.texture, app.frame.Pix)
		app.dirty = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(app.texture, 0, 0, rl.White)

	// Orbit overlay
	if app.haveTrace {
		app.drawOrbit(w, h)
	}

	// HUD strip
	span := app.vp.Scale * float64(w)
	coloring := "BANDED"
	if app.smooth {
		coloring = "SMOOTH"
	}
	iterMode := ""
	if app.adaptive {
		iterMode = " AUTO"
	}
	info := fmt.Sprintf("CENTER: %.9f %+.9fi | SPAN: %.3e | ITER: %d%s | COLOR: %s | %s",
		app.vp.CenterX, app.vp.CenterY, span, app.maxIter, iterMode, coloring, modeName(app.mode))
	rl.DrawRectangle(0, 0, int32(w), hudHeight, rl.Color{R: 0, G: 0, B: 0, A: 170})
	rl.DrawText(info, 8, 7, fontSize, rl.RayWhite)

	rl.EndDrawing()
}

// Project the stored orbit through the current viewport and draw it as
// connected line segments
func (app *App) drawOrbit(w, h int) {
	prevX, prevY := app.vp.PlaneToScreen(real(app.orbit[0]), imag(app.orbit[0]), w, h)
	for _, z := range app.orbit[1:] {
		px, py := app.vp.PlaneToScreen(real(z), imag(z), w, h)
		rl.DrawLineEx(
			rl.Vector2{X: float32(prevX), Y: float32(prevY)},
			rl.Vector2{X: float32(px), Y: float32(py)},
			orbitThickness, rl.Gold,
		)
		prevX, prevY = px, py
	}

	cx, cy := app.vp.PlaneToScreen(real(app.traceC), imag(app.traceC), w, h)
	rl.DrawCircleLines(int32(cx), int32(cy), markerRadius, rl.White)
}

func modeName(m Mode) string {
	switch m {
	case ModePanning:
		return "PANNING"
	case ModeTracing:
		return "TRACING"
	default:
		return "IDLE"
	}
}

func main() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(screenWidth, screenHeight, "Mandelbrot Explorer")
	rl.SetTargetFPS(60)

	app := NewApp(screenWidth, screenHeight)
	log.Printf("mandelview: drag to pan, wheel to zoom, right-click to trace, 1-6 landmarks, R reset")

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	rl.UnloadTexture(app.texture)
	rl.CloseWindow()
}
