package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/starfield/field"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name                 string
		v, min, max, step, w float64
	}{
		{"below min", -5, 100, 100000, 100, 100},
		{"above max", 1e9, 100, 100000, 100, 100000},
		{"rounds down", 30040, 100, 100000, 100, 30000},
		{"rounds up", 30060, 100, 100000, 100, 30100},
		{"fine step", 0.40000000596, 0.01, 1, 0.01, 0.4},
		{"integer step", 6.6, 2, 20, 1, 7},
		{"continuous", 0.1234, 0, 1, 0, 0.1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.w, Snap(tt.v, tt.min, tt.max, tt.step), 1e-9)
		})
	}
}

func TestGalaxyPanelBindings(t *testing.T) {
	p := field.DefaultGalaxyParams()
	desc := GalaxyPanel(&p)

	assert.Len(t, desc.Sliders, 7)
	assert.Len(t, desc.Colors, 2)

	byLabel := map[string]SliderDescriptor{}
	for _, s := range desc.Sliders {
		byLabel[s.Label] = s
		// Stock values sit inside the slider ranges
		assert.GreaterOrEqual(t, s.Get(), s.Min, s.Label)
		assert.LessOrEqual(t, s.Get(), s.Max, s.Label)
	}

	byLabel["count"].Set(Snap(12345, 100, 100000, 100))
	assert.Equal(t, 12300, p.Count)

	byLabel["branches"].Set(3.9999999)
	assert.Equal(t, 4, p.Branches)

	byLabel["spin"].Set(0.55)
	assert.Equal(t, 0.55, p.Spin)

	red := field.Color{R: 1}
	desc.Colors[1].Set(red)
	assert.Equal(t, red, p.OutsideColor)
}

func TestParticlesPanelBindings(t *testing.T) {
	p := field.DefaultUniformParams()
	desc := ParticlesPanel(&p)

	desc.Sliders[1].Set(6)
	assert.Equal(t, 6.0, p.Extent)
	assert.Equal(t, 10000.0, desc.Sliders[0].Get())
}

func TestColorConversion(t *testing.T) {
	c := field.MustParseColor("#1b3984")
	back := FromRL(ToRL(c))
	assert.Equal(t, c.Hex(), back.Hex())
	assert.Equal(t, uint8(255), ToRL(c).A)
	assert.Equal(t, uint8(255), ToRL(field.Color{R: 2}).R)
}
