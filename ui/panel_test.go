package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/starfield/field"
)

func TestSliderEditIgnoresClamping(t *testing.T) {
	g := field.DefaultGalaxyParams()
	g.Radius = 0
	g.Branches = 1
	g.Spin = 0.123456
	galaxy := sliderByLabel(GalaxyPanel(&g))

	u := field.DefaultUniformParams()
	u.Count = 100000
	particles := sliderByLabel(ParticlesPanel(&u))

	tests := []struct {
		name string
		s    SliderDescriptor
		cur  float64
	}{
		{"radius below min", galaxy["radius"], 0},
		{"branches below min", galaxy["branches"], 1},
		{"count above max", particles["count"], 100000},
		{"off-grid value", galaxy["spin"], 0.123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An untouched SliderBar hands back its clamped input.
			shown := float32(tt.cur)
			if shown < float32(tt.s.Min) {
				shown = float32(tt.s.Min)
			}
			if shown > float32(tt.s.Max) {
				shown = float32(tt.s.Max)
			}

			v, edited := sliderEdit(tt.s, tt.cur, shown)
			assert.False(t, edited)
			assert.Equal(t, tt.cur, v)
		})
	}

	assert.Equal(t, 0.0, g.Radius)
	assert.Equal(t, 1, g.Branches)
	assert.Equal(t, 100000, u.Count)
}

func TestSliderEditCommitsMoves(t *testing.T) {
	u := field.DefaultUniformParams()
	u.Count = 100000
	count := sliderByLabel(ParticlesPanel(&u))["count"]

	v, edited := sliderEdit(count, 100000, 30060)
	assert.True(t, edited)
	assert.InDelta(t, 30100, v, 1e-9)

	// Dragging within half a step of the current value is not an edit.
	v, edited = sliderEdit(count, 30000, 30020)
	assert.False(t, edited)
	assert.InDelta(t, 30000, v, 1e-9)

	g := field.DefaultGalaxyParams()
	spin := sliderByLabel(GalaxyPanel(&g))["spin"]
	v, edited = sliderEdit(spin, 0.01, 0.4)
	assert.True(t, edited)
	assert.InDelta(t, 0.4, v, 1e-9)
}

func TestPanelVisibility(t *testing.T) {
	p := field.DefaultUniformParams()
	panel := NewPanel(ParticlesPanel(&p), 10, 10)

	assert.True(t, panel.IsVisible())
	assert.Equal(t, float32(300), panel.Bounds().Width)

	panel.SetVisible(false)
	assert.False(t, panel.IsVisible())
	assert.Zero(t, panel.Bounds().Width)
	assert.False(t, panel.Draw(), "hidden panel reports no edits")

	assert.True(t, panel.Toggle())
	assert.True(t, panel.IsVisible())
}

func TestErrorLineClearsPanelAndLegend(t *testing.T) {
	y := errorY(800)
	assert.Greater(t, y, int32(400))
	assert.Less(t, y, int32(800-25), "error sits above the controls legend")
}

func sliderByLabel(desc PanelDescriptor) map[string]SliderDescriptor {
	m := map[string]SliderDescriptor{}
	for _, s := range desc.Sliders {
		m[s.Label] = s
	}
	return m
}
