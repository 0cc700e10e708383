// Density preview tool - top-down galaxy density map with parameter sliders.
//
// Usage: go run ./cmd/densitypreview -seed 42
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/field"
	"github.com/pthm-cable/starfield/telemetry"
	"github.com/pthm-cable/starfield/ui"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 600
	gridSize     = 256
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 42, "RNG seed, reused for every regeneration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}
	params := cfg.Galaxy

	rl.InitWindow(windowWidth, windowHeight, "Galaxy Density Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	// Create texture for rendering
	grid := make([]float32, gridSize*gridSize)
	pixels := make([]color.RGBA, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	panel := ui.NewPanel(ui.GalaxyPanel(&params), previewSize+20, 10)
	panel.OnReset = func() { params = cfg.Galaxy }

	var stats telemetry.GenerationStats
	var lastErr string
	regenerate := func() {
		start := time.Now()
		// Same seed every time so only parameter changes show.
		f, err := field.GenerateSpiral(params, rand.New(rand.NewSource(*seed)))
		if err != nil {
			lastErr = err.Error()
			return
		}
		lastErr = ""
		stats = telemetry.ComputeGenerationStats("galaxy", "", f, time.Since(start))

		extent := params.Radius + field.MaxJitter(params.Radius, params)
		densityGrid(f, gridSize, extent, grid)
		for i, v := range grid {
			pixels[i] = densityColor(v)
		}
		rl.UpdateTexture(texture, pixels)
	}
	regenerate()

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Points: %d  Generated in %.1fms", stats.Points, stats.DurationMS), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Radius p10: %.2f  p50: %.2f  p90: %.2f  max: %.2f",
			stats.RadiusP10, stats.RadiusP50, stats.RadiusP90, stats.RadiusMax), 15, statsY+20, 16, rl.DarkGray)
		if lastErr != "" {
			rl.DrawText(lastErr, 15, statsY+45, 14, rl.Red)
		}

		if panel.Draw() {
			regenerate()
		}

		rl.EndDrawing()
	}
}
