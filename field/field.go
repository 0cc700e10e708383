// Package field generates procedural point fields: flat position and colour
// buffers ready to be attached to a drawable.
package field

import "math"

// Source supplies uniform random numbers in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Float64 returns f().
func (f SourceFunc) Float64() float64 { return f() }

// PointField is a set of unconnected points with per-point colour.
// Positions and Colors are index-aligned xyz / rgb triples.
type PointField struct {
	Positions []float32
	Colors    []float32
}

// newPointField allocates buffers for count points.
func newPointField(count int) *PointField {
	return &PointField{
		Positions: make([]float32, 3*count),
		Colors:    make([]float32, 3*count),
	}
}

// Len returns the number of points.
func (f *PointField) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Positions) / 3
}

// Position returns the coordinates of point i.
func (f *PointField) Position(i int) (x, y, z float32) {
	p := f.Positions[3*i : 3*i+3]
	return p[0], p[1], p[2]
}

// Color returns the colour of point i.
func (f *PointField) Color(i int) (r, g, b float32) {
	c := f.Colors[3*i : 3*i+3]
	return c[0], c[1], c[2]
}

// RadialDistance returns the distance of point i from the y axis.
func (f *PointField) RadialDistance(i int) float64 {
	x, _, z := f.Position(i)
	return math.Hypot(float64(x), float64(z))
}

// Clone returns a deep copy of the field.
func (f *PointField) Clone() *PointField {
	return &PointField{
		Positions: append([]float32(nil), f.Positions...),
		Colors:    append([]float32(nil), f.Colors...),
	}
}

// sign mirrors a float sign function: -1, 0 or +1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
