package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Demo != DemoGalaxy {
		t.Errorf("expected demo %q, got %q", DemoGalaxy, cfg.Demo)
	}
	if cfg.Galaxy.Count != 30000 || cfg.Galaxy.Branches != 7 {
		t.Errorf("unexpected galaxy defaults: %+v", cfg.Galaxy)
	}
	if got := cfg.Galaxy.InsideColor.Hex(); got != "#ff6030" {
		t.Errorf("expected inside colour #ff6030, got %s", got)
	}
	if cfg.Particles.Count != 10000 || cfg.Particles.Extent != 4 {
		t.Errorf("unexpected particle defaults: %+v", cfg.Particles)
	}
	if cfg.Camera.GalaxyPosition != [3]float64{3, 3, 3} {
		t.Errorf("expected galaxy camera at (3,3,3), got %v", cfg.Camera.GalaxyPosition)
	}
	if cfg.Derived.PersistDebounce != 120*time.Millisecond {
		t.Errorf("expected 120ms debounce, got %s", cfg.Derived.PersistDebounce)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("expected derived width 1280, got %f", cfg.Derived.ScreenW32)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("demo: particles\ngalaxy:\n  branches: 3\n  outside_color: \"#00ff00\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Demo != DemoParticles {
		t.Errorf("expected demo particles, got %q", cfg.Demo)
	}
	if cfg.Galaxy.Branches != 3 {
		t.Errorf("expected branches 3, got %d", cfg.Galaxy.Branches)
	}
	// Untouched fields keep their defaults
	if cfg.Galaxy.Count != 30000 {
		t.Errorf("expected default count 30000, got %d", cfg.Galaxy.Count)
	}
	if got := cfg.Galaxy.OutsideColor.Hex(); got != "#00ff00" {
		t.Errorf("expected outside colour #00ff00, got %s", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero branches", "galaxy:\n  branches: 0\n"},
		{"negative particle count", "particles:\n  count: -3\n"},
		{"unknown demo", "demo: haunted_house\n"},
		{"bad colour", "galaxy:\n  inside_color: \"red-ish\"\n"},
		{"empty camera range", "camera:\n  min_distance: 5\n  max_distance: 1\n"},
		{"malformed", "galaxy: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %q", tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Galaxy.Spin = 0.75

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Galaxy.Spin != 0.75 {
		t.Errorf("expected spin 0.75, got %f", loaded.Galaxy.Spin)
	}
	if loaded.Galaxy.InsideColor.Hex() != cfg.Galaxy.InsideColor.Hex() {
		t.Errorf("colour changed across roundtrip: %s vs %s", loaded.Galaxy.InsideColor, cfg.Galaxy.InsideColor)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	prev := global
	global = nil
	defer func() {
		global = prev
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}

func TestInit(t *testing.T) {
	prev := global
	defer func() { global = prev }()

	if err := Init(""); err != nil {
		t.Fatal(err)
	}
	if Cfg().Screen.TargetFPS != 60 {
		t.Errorf("expected target fps 60, got %d", Cfg().Screen.TargetFPS)
	}
}

func TestMustInit(t *testing.T) {
	prev := global
	defer func() { global = prev }()

	MustInit("")
	if Cfg().Demo != DemoGalaxy {
		t.Errorf("expected demo %q, got %q", DemoGalaxy, Cfg().Demo)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a missing file")
		}
	}()
	MustInit(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("galaxy:\n  branches: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	if cfg, err := w.Poll(); cfg != nil || err != nil {
		t.Fatalf("expected no change, got %v, %v", cfg, err)
	}

	// Replace atomically so a reload never sees a half-written file.
	tmp := filepath.Join(filepath.Dir(path), "config.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("galaxy:\n  branches: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		cfg, err := w.Poll()
		if err != nil {
			t.Fatalf("Poll error: %v", err)
		}
		if cfg != nil {
			if cfg.Galaxy.Branches != 9 {
				t.Errorf("expected branches 9, got %d", cfg.Galaxy.Branches)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("watcher never reported the change")
}
