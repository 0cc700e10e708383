package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Panel renders a parameter panel and reports committed edits.
type Panel struct {
	desc     PanelDescriptor
	renderer *Renderer
	x, y     int32
	visible  bool

	// dirty is set while an edit is in progress and cleared when committed.
	dirty  bool
	height int32

	// OnReset is called when the reset button is pressed.
	OnReset func()
}

// NewPanel creates a panel at the given screen position.
func NewPanel(desc PanelDescriptor, x, y int32) *Panel {
	if desc.Width == 0 {
		desc.Width = 300
	}
	return &Panel{
		desc:     desc,
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		visible:  true,
	}
}

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Bounds returns the screen area covered by the panel on the last frame.
func (p *Panel) Bounds() rl.Rectangle {
	if !p.visible {
		return rl.Rectangle{}
	}
	return rl.Rectangle{X: float32(p.x), Y: float32(p.y), Width: float32(p.desc.Width), Height: float32(p.height)}
}

// Draw renders the panel. It returns true once per finished edit: a value
// changed and the mouse button has since been released.
func (p *Panel) Draw() bool {
	if !p.visible {
		return false
	}

	r := p.renderer
	th := r.Theme
	width := p.desc.Width

	if p.height > 0 {
		r.DrawPanel(p.x, p.y, width, p.height)
	}

	x := p.x + th.Padding
	y := p.y + th.Padding
	if p.desc.Title != "" {
		y = r.DrawSectionHeader(x, y, p.desc.Title) + 4
	}

	sliderX := float32(x + th.LabelWidth)
	sliderW := float32(width - th.LabelWidth - th.Padding*2 - 50)

	for _, s := range p.desc.Sliders {
		r.DrawLabel(x, y, s.Label)
		cur := s.Get()
		v := gui.SliderBar(
			rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: float32(th.SliderHeight)},
			"", "",
			float32(cur), float32(s.Min), float32(s.Max),
		)
		if next, ok := sliderEdit(s, cur, v); ok {
			s.Set(next)
			p.dirty = true
		}
		format := s.Format
		if format == "" {
			format = "%.2f"
		}
		rl.DrawText(fmt.Sprintf(format, s.Get()), int32(sliderX+sliderW)+6, y, th.FontSize, th.ValueColor)
		y += th.LineHeight + 4
	}

	for _, c := range p.desc.Colors {
		cur := c.Get()
		r.DrawLabel(x, y, c.Label)
		rl.DrawText(cur.Hex(), x, y+th.LineHeight, th.FontSize, th.ValueColor)
		picked := gui.ColorPicker(
			rl.Rectangle{X: sliderX, Y: float32(y), Width: float32(th.PickerSize), Height: float32(th.PickerSize)},
			"", ToRL(cur),
		)
		if picked != ToRL(cur) {
			c.Set(FromRL(picked))
			p.dirty = true
		}
		y += th.PickerSize + th.Padding
	}

	if p.OnReset != nil {
		if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 120, Height: 24}, "Reset") {
			p.OnReset()
			p.dirty = true
		}
		y += 24 + th.Padding
	}

	p.height = y - p.y

	if p.dirty && !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		p.dirty = false
		return true
	}
	return false
}

// sliderEdit returns the value a slider committed this frame. SliderBar
// clamps the value it is given, so an untouched value outside the slider range
// comes back moved; only a value that differs from the clamped input counts.
// Values off the step grid pass through until the user drags.
func sliderEdit(s SliderDescriptor, cur float64, v float32) (float64, bool) {
	untouched := float32(math.Max(s.Min, math.Min(s.Max, cur)))
	if v == untouched || v == float32(cur) {
		return cur, false
	}
	next := Snap(float64(v), s.Min, s.Max, s.Step)
	// float32 round-trips must not count as edits
	if math.Abs(next-cur) <= changeTolerance(s) {
		return cur, false
	}
	return next, true
}

func changeTolerance(s SliderDescriptor) float64 {
	if s.Step > 0 {
		return s.Step / 2
	}
	return (s.Max - s.Min) * 1e-6
}
