// Snapshot tool - renders a generated field to a PNG file for inspection.
//
// Usage: go run ./cmd/snapshot -demo galaxy -seed 7 -out galaxy.png
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	demo := flag.String("demo", config.DemoGalaxy, "Demo to render: galaxy or particles")
	seed := flag.Int64("seed", 1, "RNG seed")
	at := flag.Float64("t", 0, "Elapsed time in seconds for the particle animation")
	outPath := flag.String("out", "snapshot.png", "Output PNG path")
	width := flag.Int("width", 1024, "Render width")
	height := flag.Int("height", 768, "Render height")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Build the scene before opening the window so bad params fail fast
	s, pos, err := buildScene(cfg, *demo, *seed, *width, *height, *at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate field: %v\n", err)
		os.Exit(1)
	}

	cam := camera.New(
		mgl32.Vec3{float32(pos[0]), float32(pos[1]), float32(pos[2])},
		mgl32.Vec3{},
		float32(*width), float32(*height),
	)
	cam.Fovy = float32(cfg.Camera.Fovy)

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Snapshot")
	defer rl.CloseWindow()

	points := renderer.NewPointsRenderer()
	s.AddDisposer(points)
	defer points.Unload()

	// Create render texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	points.Draw(s, cam)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	// Export to PNG
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("%s rendered to: %s (%dx%d, %d points)\n", *demo, *outPath, *width, *height, s.ActiveField().Len())
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}

// buildScene generates the field for demo, sizes the viewport and advances
// it to elapsed. It also returns the configured camera position for demo.
func buildScene(cfg *config.Config, demo string, seed int64, width, height int, elapsed float64) (*scene.Scene, [3]float64, error) {
	s := scene.New()
	rng := rand.New(rand.NewSource(seed))
	var ctrl scene.Controller
	var err error
	pos := cfg.Camera.GalaxyPosition
	switch demo {
	case config.DemoGalaxy:
		ctrl, err = scene.NewGalaxy(s, cfg.Galaxy, rng)
	case config.DemoParticles:
		ctrl, err = scene.NewParticles(s, cfg.Particles, rng)
		pos = cfg.Camera.ParticlesPosition
	default:
		err = fmt.Errorf("unknown demo %q", demo)
	}
	if err != nil {
		return nil, pos, err
	}

	if err := ctrl.Dispatch(scene.Resized{Width: width, Height: height}); err != nil {
		return nil, pos, err
	}
	if err := ctrl.Dispatch(scene.Tick{Elapsed: elapsed}); err != nil {
		return nil, pos, err
	}
	return s, pos, nil
}
