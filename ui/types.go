// Package ui provides a descriptor-driven parameter panel. Controls are
// defined as metadata bound to getters and setters, so the panel layout
// follows the parameter records without hard-coding field names.
package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/field"
)

// SliderDescriptor binds a numeric parameter to a slider.
type SliderDescriptor struct {
	Label  string
	Min    float64
	Max    float64
	Step   float64 // values snap to Min + k*Step (0 = continuous)
	Format string  // Printf format for the value label
	Get    func() float64
	Set    func(float64)
}

// ColorDescriptor binds a colour parameter to a colour picker.
type ColorDescriptor struct {
	Label string
	Get   func() field.Color
	Set   func(field.Color)
}

// PanelDescriptor defines a complete panel layout.
type PanelDescriptor struct {
	Title   string
	Sliders []SliderDescriptor
	Colors  []ColorDescriptor
	Width   int32
}

// Snap clamps v to [min, max] and rounds it to the nearest step from min.
func Snap(v, min, max, step float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	if step <= 0 {
		return v
	}
	k := math.Round((v - min) / step)
	snapped := min + k*step
	if snapped > max {
		snapped -= step
	}
	// Trim float noise from the step arithmetic
	return math.Round(snapped*1e9) / 1e9
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderHeight   int32
	PickerSize     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		SliderHeight:   14,
		PickerSize:     80,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
