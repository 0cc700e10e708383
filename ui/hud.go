package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Points     int
	Generation string
	Elapsed    float64
	FPS        int32
	Width      int // viewport size in pixels
	Height     int
	LastError  string
}

// errorY is the baseline of the error line: bottom-left, just above the
// controls legend and clear of the panel.
func errorY(screenHeight int32) int32 {
	return screenHeight - 45
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD in the top-right corner and any error at the bottom.
func (h *HUD) Draw(data HUDData) {
	x := int32(data.Width) - 260

	rl.DrawText(data.Title, x, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Points: %d | FPS: %d", data.Points, data.FPS),
		x, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("t = %.1fs | %dx%d", data.Elapsed, data.Width, data.Height),
		x, 55, 16, rl.LightGray,
	)
	if gen := data.Generation; gen != "" {
		if len(gen) > 8 {
			gen = gen[:8]
		}
		rl.DrawText("gen "+gen, x, 75, 12, rl.Gray)
	}
	if data.LastError != "" {
		rl.DrawText(data.LastError, 10, errorY(int32(data.Height)), 14, rl.Red)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
