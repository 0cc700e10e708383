package field

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an RGB colour with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// ParseColor parses a "#rrggbb" or "#rgb" string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// Mix interpolates linearly from a to b. t is clamped to [0, 1] and the
// endpoints are reproduced exactly.
func Mix(a, b Color, t float64) Color {
	t = clamp01(t)
	s := 1 - t
	return Color{
		R: clamp01(s*a.R + t*b.R),
		G: clamp01(s*a.G + t*b.G),
		B: clamp01(s*a.B + t*b.B),
	}
}

// MarshalYAML writes the colour as a hex string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML reads a hex string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
