package renderer

import (
	"image/color"
	"testing"
)

func TestNebulaPixels(t *testing.T) {
	a := color.RGBA{R: 255, G: 96, B: 48, A: 255}
	b := color.RGBA{R: 27, G: 57, B: 132, A: 255}

	px := NebulaPixels(32, 7, a, b)
	if len(px) != 32*32 {
		t.Fatalf("len = %d, want %d", len(px), 32*32)
	}

	for i, p := range px {
		if p.A > 96 {
			t.Fatalf("pixel %d alpha %d exceeds 96", i, p.A)
		}
		if p.B < 48 || p.B > 132 {
			t.Fatalf("pixel %d blue %d outside tint range", i, p.B)
		}
	}

	again := NebulaPixels(32, 7, a, b)
	for i := range px {
		if px[i] != again[i] {
			t.Fatalf("pixel %d differs between runs with the same seed", i)
		}
	}
}

func TestLerp8(t *testing.T) {
	if got := lerp8(10, 200, 0); got != 10 {
		t.Errorf("lerp8 at 0 = %d, want 10", got)
	}
	if got := lerp8(10, 200, 1); got != 200 {
		t.Errorf("lerp8 at 1 = %d, want 200", got)
	}
}
