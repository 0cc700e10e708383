package main

import (
	"testing"

	"github.com/pthm-cable/starfield/config"
)

func TestBuildScene(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Particles.Count = 300

	s, pos, err := buildScene(cfg, config.DemoParticles, 7, 640, 480, 2.5)
	if err != nil {
		t.Fatalf("buildScene: %v", err)
	}
	if pos != cfg.Camera.ParticlesPosition {
		t.Errorf("camera position = %v, want %v", pos, cfg.Camera.ParticlesPosition)
	}
	if vp := s.Viewport(); vp.Width != 640 || vp.Height != 480 {
		t.Errorf("viewport = %+v, want 640x480", vp)
	}
	if s.Elapsed() != 2.5 {
		t.Errorf("elapsed = %v, want 2.5", s.Elapsed())
	}
	if n := s.ActiveField().Len(); n != 300 {
		t.Errorf("points = %d, want 300", n)
	}
}

func TestBuildSceneErrors(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	if _, _, err := buildScene(cfg, "nebula", 1, 640, 480, 0); err == nil {
		t.Error("expected error for unknown demo")
	}

	cfg.Galaxy.Branches = 0
	if _, _, err := buildScene(cfg, config.DemoGalaxy, 1, 640, 480, 0); err == nil {
		t.Error("expected error for invalid galaxy params")
	}
}
