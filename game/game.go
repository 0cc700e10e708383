// Package game runs the viewer: it owns the scene controller, camera, panel,
// renderer and telemetry, and drives them one frame at a time.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/field"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/scene"
	"github.com/pthm-cable/starfield/telemetry"
	"github.com/pthm-cable/starfield/ui"
)

// HeadlessDT is the fixed time step used when running without a window.
const HeadlessDT = 1.0 / 60.0

// Options configures a viewer run.
type Options struct {
	Seed       int64
	Demo       string // overrides the config demo when non-empty
	ConfigPath string
	Watch      bool // reload ConfigPath when it changes
	OutputDir  string
	CameraFile string
	Headless   bool
}

// Game holds the complete viewer state.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	scene *scene.Scene
	ctrl  scene.Controller
	kind  scene.Kind

	// Parameter records edited by the panel
	galaxyParams   field.GalaxyParams
	particleParams field.UniformParams
	pendingEdit    bool

	camera      *camera.Orbit
	cameraStore *camera.Store
	watcher     *config.Watcher

	// Graphical mode only
	background *renderer.BackgroundRenderer
	points     *renderer.PointsRenderer
	panel      *ui.Panel
	hud        *ui.HUD

	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	frame          int
	elapsed        float64
	width, height  int
	lastGeneration uuid.UUID
	lastErr        string
}

// NewGameWithOptions creates a viewer and generates the initial field.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	demo := cfg.Demo
	if opts.Demo != "" {
		demo = opts.Demo
	}

	g := &Game{
		cfg:            cfg,
		opts:           opts,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		scene:          scene.New(),
		galaxyParams:   cfg.Galaxy,
		particleParams: cfg.Particles,
		width:          cfg.Screen.Width,
		height:         cfg.Screen.Height,
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
	}

	if !opts.Headless {
		g.background = renderer.NewBackgroundRenderer(int32(g.width), int32(g.height), 10, 12, 28, opts.Seed)
		g.points = renderer.NewPointsRenderer()
		g.scene.AddDisposer(g.points)
		g.hud = ui.NewHUD()
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if err := g.startController(demo); err != nil {
		g.Unload()
		return nil, err
	}
	g.setupCamera(demo)

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			g.Unload()
			return nil, err
		}
		g.watcher = w
	}

	return g, nil
}

// startController builds the controller for demo. Its constructor generates
// the first field.
func (g *Game) startController(demo string) error {
	start := time.Now()
	var err error
	switch demo {
	case config.DemoGalaxy:
		g.kind = scene.KindGalaxy
		g.ctrl, err = scene.NewGalaxy(g.scene, g.galaxyParams, g.rng)
		if err == nil && !g.opts.Headless {
			g.panel = ui.NewPanel(ui.GalaxyPanel(&g.galaxyParams), 10, 10)
		}
	case config.DemoParticles:
		g.kind = scene.KindParticles
		g.ctrl, err = scene.NewParticles(g.scene, g.particleParams, g.rng)
		if err == nil && !g.opts.Headless {
			g.panel = ui.NewPanel(ui.ParticlesPanel(&g.particleParams), 10, 10)
		}
	default:
		return fmt.Errorf("unknown demo %q", demo)
	}
	if err != nil {
		return fmt.Errorf("generating initial %s field: %w", demo, err)
	}
	if g.panel != nil {
		g.panel.OnReset = g.resetParams
	}

	if err := g.ctrl.Dispatch(scene.Resized{Width: g.width, Height: g.height}); err != nil {
		return err
	}
	g.recordGeneration(time.Since(start))
	return nil
}

// setupCamera places the orbit camera for demo and restores any saved state.
func (g *Game) setupCamera(demo string) {
	cc := g.cfg.Camera
	pos := cc.GalaxyPosition
	if demo == config.DemoParticles {
		pos = cc.ParticlesPosition
	}

	cam := camera.New(vec3(pos), mgl32.Vec3{}, float32(g.width), float32(g.height))
	cam.Fovy = float32(cc.Fovy)
	cam.Near = float32(cc.Near)
	cam.Far = float32(cc.Far)
	cam.Damping = float32(cc.Damping)
	cam.MinDistance = float32(cc.MinDistance)
	cam.MaxDistance = float32(cc.MaxDistance)
	cam.LookFrom(vec3(pos), mgl32.Vec3{})
	g.camera = cam

	g.cameraStore = camera.NewStore(g.opts.CameraFile, g.cfg.Derived.PersistDebounce)
	st, ok, err := g.cameraStore.Load()
	if err != nil {
		slog.Warn("ignoring saved camera", "error", err)
		return
	}
	if ok {
		cam.Restore(st)
	}
}

// dispatch delivers ev to the controller and records any new generation.
func (g *Game) dispatch(ev scene.Event) {
	start := time.Now()
	if err := g.ctrl.Dispatch(ev); err != nil {
		g.lastErr = err.Error()
		return
	}
	if pts, _, ok := g.scene.Active(); ok && pts.Generation != g.lastGeneration {
		g.lastErr = ""
		g.recordGeneration(time.Since(start))
	}
}

// commitParams sends the current parameter records to the controller.
func (g *Game) commitParams() {
	g.perfCollector.StartPhase(telemetry.PhaseRegenerate)
	switch g.kind {
	case scene.KindGalaxy:
		g.dispatch(scene.GalaxyChanged{Params: g.galaxyParams})
	case scene.KindParticles:
		g.dispatch(scene.ParticlesChanged{Params: g.particleParams})
	}
}

// resetParams restores the configured parameters and regenerates.
func (g *Game) resetParams() {
	g.galaxyParams = g.cfg.Galaxy
	g.particleParams = g.cfg.Particles
	g.pendingEdit = true
}

// applyConfig switches to a reloaded configuration.
func (g *Game) applyConfig(cfg *config.Config) {
	config.Set(cfg)
	g.cfg = cfg
	g.galaxyParams = cfg.Galaxy
	g.particleParams = cfg.Particles
	g.commitParams()
}

// pollConfig checks the watcher for a changed config file.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	cfg, err := g.watcher.Poll()
	if err != nil {
		g.lastErr = err.Error()
		slog.Warn("config reload failed", "error", err)
		return
	}
	if cfg != nil {
		g.applyConfig(cfg)
	}
}

// UpdateHeadless advances one frame at the fixed time step.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseEvents)
	g.pollConfig()
	if g.pendingEdit {
		g.pendingEdit = false
		g.commitParams()
	}

	g.elapsed += HeadlessDT
	g.perfCollector.StartPhase(telemetry.PhaseDisplace)
	g.dispatch(scene.Tick{Elapsed: g.elapsed})
	g.perfCollector.EndFrame()

	g.endFrame()
}

// endFrame counts the frame and writes periodic frame records.
func (g *Game) endFrame() {
	g.frame++
	every := g.cfg.Telemetry.FramesEvery
	if every <= 0 || g.frame%every != 0 {
		return
	}
	stats := g.perfCollector.Stats()
	slog.Debug("frame stats", "frame", g.frame, "perf", stats)
	if err := g.outputManager.WriteFrame(stats.ToCSV(g.frame, g.elapsed, g.scene.ActiveField().Len())); err != nil {
		slog.Error("failed to write frame", "error", err)
	}
}

// Frame returns the number of completed frames.
func (g *Game) Frame() int { return g.frame }

// Scene returns the viewer's scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Unload flushes pending state and releases resources.
func (g *Game) Unload() {
	if g.cameraStore != nil {
		if err := g.cameraStore.Close(); err != nil {
			slog.Error("failed to save camera", "error", err)
		}
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			slog.Error("failed to close config watcher", "error", err)
		}
	}
	g.scene.Clear()
	if g.points != nil {
		g.points.Unload()
		g.background.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
