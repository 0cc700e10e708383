package ui

import (
	"math"

	"github.com/pthm-cable/starfield/field"
)

// GalaxyPanel describes the galaxy controls, bound to p.
func GalaxyPanel(p *field.GalaxyParams) PanelDescriptor {
	return PanelDescriptor{
		Title: "Galaxy",
		Sliders: []SliderDescriptor{
			{Label: "count", Min: 100, Max: 100000, Step: 100, Format: "%.0f",
				Get: func() float64 { return float64(p.Count) },
				Set: func(v float64) { p.Count = int(math.Round(v)) }},
			{Label: "size", Min: 0.001, Max: 0.1, Step: 0.001, Format: "%.3f",
				Get: func() float64 { return p.Size },
				Set: func(v float64) { p.Size = v }},
			{Label: "radius", Min: 0.01, Max: 20, Step: 0.01,
				Get: func() float64 { return p.Radius },
				Set: func(v float64) { p.Radius = v }},
			{Label: "branches", Min: 2, Max: 20, Step: 1, Format: "%.0f",
				Get: func() float64 { return float64(p.Branches) },
				Set: func(v float64) { p.Branches = int(math.Round(v)) }},
			{Label: "spin", Min: 0.01, Max: 1, Step: 0.01,
				Get: func() float64 { return p.Spin },
				Set: func(v float64) { p.Spin = v }},
			{Label: "spreadRange", Min: 0.01, Max: 1, Step: 0.01,
				Get: func() float64 { return p.SpreadRange },
				Set: func(v float64) { p.SpreadRange = v }},
			{Label: "spread", Min: 1, Max: 10, Step: 0.1, Format: "%.1f",
				Get: func() float64 { return p.Spread },
				Set: func(v float64) { p.Spread = v }},
		},
		Colors: []ColorDescriptor{
			{Label: "insideColor",
				Get: func() field.Color { return p.InsideColor },
				Set: func(c field.Color) { p.InsideColor = c }},
			{Label: "outsideColor",
				Get: func() field.Color { return p.OutsideColor },
				Set: func(c field.Color) { p.OutsideColor = c }},
		},
	}
}

// ParticlesPanel describes the particle controls, bound to p.
func ParticlesPanel(p *field.UniformParams) PanelDescriptor {
	return PanelDescriptor{
		Title: "Particles",
		Sliders: []SliderDescriptor{
			{Label: "count", Min: 100, Max: 50000, Step: 100, Format: "%.0f",
				Get: func() float64 { return float64(p.Count) },
				Set: func(v float64) { p.Count = int(math.Round(v)) }},
			{Label: "extent", Min: 0.5, Max: 20, Step: 0.1, Format: "%.1f",
				Get: func() float64 { return p.Extent },
				Set: func(v float64) { p.Extent = v }},
			{Label: "size", Min: 0.01, Max: 0.5, Step: 0.01,
				Get: func() float64 { return p.Size },
				Set: func(v float64) { p.Size = v }},
		},
	}
}
