package main

import (
	"image/color"
	"math"

	"github.com/pthm-cable/starfield/field"
)

// densityGrid bins a field's x/z coordinates into a size*size grid covering
// [-extent, extent] on both axes. Values are log-scaled to [0,1].
// Points outside the grid are dropped.
func densityGrid(f *field.PointField, size int, extent float64, grid []float32) {
	for i := range grid {
		grid[i] = 0
	}
	if extent <= 0 {
		return
	}

	var peak float32
	n := f.Len()
	for i := 0; i < n; i++ {
		x, _, z := f.Position(i)
		gx := int((float64(x) + extent) / (2 * extent) * float64(size))
		gz := int((float64(z) + extent) / (2 * extent) * float64(size))
		if gx < 0 || gx >= size || gz < 0 || gz >= size {
			continue
		}
		idx := gz*size + gx
		grid[idx]++
		if grid[idx] > peak {
			peak = grid[idx]
		}
	}
	if peak == 0 {
		return
	}

	norm := float32(math.Log1p(float64(peak)))
	for i, v := range grid {
		grid[i] = float32(math.Log1p(float64(v))) / norm
	}
}

// densityColor maps a normalised density to a gradient: black -> blue -> orange -> white.
func densityColor(v float32) color.RGBA {
	var r, g, b uint8
	switch {
	case v <= 0:
		return color.RGBA{A: 255}
	case v < 0.33:
		t := v / 0.33
		r = uint8(t * 27)
		g = uint8(t * 57)
		b = uint8(t * 132)
	case v < 0.66:
		t := (v - 0.33) / 0.33
		r = uint8(27 + t*228)
		g = uint8(57 + t*39)
		b = uint8(132 - t*84)
	default:
		t := (v - 0.66) / 0.34
		if t > 1 {
			t = 1
		}
		r = 255
		g = uint8(96 + t*159)
		b = uint8(48 + t*207)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
