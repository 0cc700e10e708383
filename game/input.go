package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/scene"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyH) && g.panel != nil {
		g.panel.Toggle()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int(rl.GetScreenWidth())
	h := int(rl.GetScreenHeight())
	if w == g.width && h == g.height {
		return
	}
	g.width = w
	g.height = h

	g.camera.Resize(float32(w), float32(h))
	g.background.Resize(float32(w), float32(h))
	g.dispatch(scene.Resized{Width: w, Height: h})
}

// handleCameraInput orbits with a left drag and zooms with the wheel.
// Input over the panel belongs to the panel.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overPanel := g.panel != nil && rl.CheckCollisionPointRec(mouse, g.panel.Bounds())

	cc := g.cfg.Camera
	if !overPanel && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			speed := float32(cc.RotateSpeed)
			g.camera.Rotate(-delta.X*speed, delta.Y*speed)
		}
	}

	moved := false
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		g.camera.ZoomBy(1 - wheel*float32(cc.ZoomSpeed))
		moved = true
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
		moved = true
	}

	if g.camera.Update(rl.GetFrameTime()) {
		moved = true
	}

	now := time.Now()
	if moved {
		g.cameraStore.Touch(now, g.camera.State())
	}
	if _, err := g.cameraStore.Flush(now); err != nil {
		g.lastErr = err.Error()
	}
}
