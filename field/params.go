package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid parameters")

// GalaxyParams describes a spiral galaxy point cloud.
type GalaxyParams struct {
	Count        int     `yaml:"count"`
	Size         float64 `yaml:"size"`         // point size in world units
	Radius       float64 `yaml:"radius"`       // outer radius of the disc
	Branches     int     `yaml:"branches"`     // number of spiral arms
	Spin         float64 `yaml:"spin"`         // extra angle per unit radius
	SpreadRange  float64 `yaml:"spread_range"` // jitter scale relative to radius
	Spread       float64 `yaml:"spread"`       // jitter exponent, higher = tighter arms
	InsideColor  Color   `yaml:"inside_color"`
	OutsideColor Color   `yaml:"outside_color"`
}

// DefaultGalaxyParams returns the stock galaxy.
func DefaultGalaxyParams() GalaxyParams {
	return GalaxyParams{
		Count:        30000,
		Size:         0.01,
		Radius:       5,
		Branches:     7,
		Spin:         0.4,
		SpreadRange:  0.2,
		Spread:       4,
		InsideColor:  MustParseColor("#ff6030"),
		OutsideColor: MustParseColor("#1b3984"),
	}
}

// Validate reports the first parameter that cannot be generated.
func (p GalaxyParams) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidParams, p.Count)
	}
	if p.Branches < 1 {
		return fmt.Errorf("%w: branches must be >= 1, got %d", ErrInvalidParams, p.Branches)
	}
	floats := []struct {
		name string
		v    float64
	}{
		{"size", p.Size},
		{"radius", p.Radius},
		{"spin", p.Spin},
		{"spread_range", p.SpreadRange},
		{"spread", p.Spread},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParams, f.name, f.v)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"size", p.Size},
		{"radius", p.Radius},
		{"spread_range", p.SpreadRange},
		{"spread", p.Spread},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidParams, f.name, f.v)
		}
	}
	if err := validateColor("inside_color", p.InsideColor); err != nil {
		return err
	}
	return validateColor("outside_color", p.OutsideColor)
}

// UniformParams describes a uniformly scattered particle cube.
type UniformParams struct {
	Count  int     `yaml:"count"`
	Extent float64 `yaml:"extent"` // edge length of the cube
	Size   float64 `yaml:"size"`
}

// DefaultUniformParams returns the stock particle field.
func DefaultUniformParams() UniformParams {
	return UniformParams{
		Count:  10000,
		Extent: 4,
		Size:   0.1,
	}
}

// Validate reports the first parameter that cannot be generated.
func (p UniformParams) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidParams, p.Count)
	}
	if math.IsNaN(p.Extent) || math.IsInf(p.Extent, 0) || p.Extent < 0 {
		return fmt.Errorf("%w: extent must be finite and >= 0, got %v", ErrInvalidParams, p.Extent)
	}
	if math.IsNaN(p.Size) || math.IsInf(p.Size, 0) || p.Size < 0 {
		return fmt.Errorf("%w: size must be finite and >= 0, got %v", ErrInvalidParams, p.Size)
	}
	return nil
}

func validateColor(name string, c Color) error {
	for _, ch := range []float64{c.R, c.G, c.B} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			return fmt.Errorf("%w: %s channels must lie in [0,1], got %v", ErrInvalidParams, name, c)
		}
	}
	return nil
}
