package field

import "math"

// GenerateUniform scatters points uniformly in a cube of edge p.Extent centred
// on the origin, with uniformly random colours.
func GenerateUniform(p UniformParams, rng Source) (*PointField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := newPointField(p.Count)
	for j := range f.Positions {
		f.Positions[j] = float32(p.Extent * (rng.Float64() - 0.5))
		f.Colors[j] = float32(rng.Float64())
	}
	return f, nil
}

// Displace sets every point's height to sin(t + 2x). X, Z and colours are
// left untouched, so repeated calls with the same t give the same buffer.
func (f *PointField) Displace(t float64) {
	for i := 0; i+2 < len(f.Positions); i += 3 {
		x := float64(f.Positions[i])
		f.Positions[i+1] = float32(math.Sin(t + 2*x))
	}
}
