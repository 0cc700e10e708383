// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/starfield/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Demo names.
const (
	DemoGalaxy    = "galaxy"
	DemoParticles = "particles"
)

// Config holds all viewer configuration.
type Config struct {
	Screen    ScreenConfig        `yaml:"screen"`
	Demo      string              `yaml:"demo"`
	Galaxy    field.GalaxyParams  `yaml:"galaxy"`
	Particles field.UniformParams `yaml:"particles"`
	Camera    CameraConfig        `yaml:"camera"`
	Telemetry TelemetryConfig     `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Fovy              float64    `yaml:"fovy"` // vertical field of view, degrees
	Near              float64    `yaml:"near"`
	Far               float64    `yaml:"far"`
	Damping           float64    `yaml:"damping"` // fraction of rotation velocity kept per frame is 1-damping
	MinDistance       float64    `yaml:"min_distance"`
	MaxDistance       float64    `yaml:"max_distance"`
	RotateSpeed       float64    `yaml:"rotate_speed"` // radians per pixel dragged
	ZoomSpeed         float64    `yaml:"zoom_speed"`   // zoom factor per wheel step
	PersistDebounceMs int        `yaml:"persist_debounce_ms"`
	GalaxyPosition    [3]float64 `yaml:"galaxy_position"`
	ParticlesPosition [3]float64 `yaml:"particles_position"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // frames averaged by the perf collector
	FramesEvery int `yaml:"frames_every"` // write a frame record every N frames
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32       float32
	ScreenH32       float32
	PersistDebounce time.Duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Set replaces the global configuration, e.g. after a reload.
func Set(cfg *Config) {
	global = cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Demo != DemoGalaxy && c.Demo != DemoParticles {
		return fmt.Errorf("unknown demo %q (want %q or %q)", c.Demo, DemoGalaxy, DemoParticles)
	}
	if err := c.Galaxy.Validate(); err != nil {
		return fmt.Errorf("galaxy: %w", err)
	}
	if err := c.Particles.Validate(); err != nil {
		return fmt.Errorf("particles: %w", err)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("camera: distance range [%v, %v] is empty", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.Damping < 0 || c.Camera.Damping > 1 {
		return fmt.Errorf("camera: damping must lie in [0,1], got %v", c.Camera.Damping)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.PersistDebounce = time.Duration(c.Camera.PersistDebounceMs) * time.Millisecond
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
