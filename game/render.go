package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/scene"
	"github.com/pthm-cable/starfield/telemetry"
	"github.com/pthm-cable/starfield/ui"
)

const controls = "Drag: orbit | Wheel: zoom | Home: reset camera | H: panel | F11: fullscreen"

// Update processes input and delivers this frame's events.
func (g *Game) Update() {
	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseEvents)

	g.handleInput()
	g.pollConfig()

	// Edits committed by the panel last frame
	if g.pendingEdit {
		g.pendingEdit = false
		g.commitParams()
	}

	g.perfCollector.StartPhase(telemetry.PhaseDisplace)
	g.elapsed = rl.GetTime()
	g.dispatch(scene.Tick{Elapsed: g.elapsed})
}

// Draw renders the frame and finishes its timing.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	g.background.Draw()

	g.points.Draw(g.scene, g.camera)

	if g.panel != nil && g.panel.Draw() {
		g.pendingEdit = true
	}
	g.drawHUD()

	rl.EndDrawing()

	g.perfCollector.EndFrame()
	g.endFrame()
}

func (g *Game) drawHUD() {
	data := g.hudData()
	data.FPS = rl.GetFPS()
	g.hud.Draw(data)
	g.hud.DrawControls(int32(data.Height), controls)
}

// hudData collects the HUD fields that do not need a window.
func (g *Game) hudData() ui.HUDData {
	vp := g.scene.Viewport()
	data := ui.HUDData{
		Title:     g.kind.String(),
		Points:    g.scene.ActiveField().Len(),
		Elapsed:   g.elapsed,
		Width:     vp.Width,
		Height:    vp.Height,
		LastError: g.lastErr,
	}
	if pts, _, ok := g.scene.Active(); ok {
		data.Generation = pts.Generation.String()
	}
	return data
}
