package field

import "math"

// GenerateSpiral builds a spiral galaxy. Each point draws its radius, then
// for x, y and z a jitter magnitude followed by an independent sign.
func GenerateSpiral(p GalaxyParams, rng Source) (*PointField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := newPointField(p.Count)
	branches := float64(p.Branches)

	for i := 0; i < p.Count; i++ {
		radius := rng.Float64() * p.Radius

		angle := 2 * math.Pi * float64(i%p.Branches) / branches
		angle += radius * p.Spin

		jx := jitter(radius, p, rng)
		jy := jitter(radius, p, rng)
		jz := jitter(radius, p, rng)

		f.Positions[3*i] = float32(radius*math.Cos(angle) + jx)
		f.Positions[3*i+1] = float32(jy)
		f.Positions[3*i+2] = float32(radius*math.Sin(angle) + jz)

		c := Mix(p.InsideColor, p.OutsideColor, radiusFraction(radius, p.Radius))
		f.Colors[3*i] = float32(c.R)
		f.Colors[3*i+1] = float32(c.G)
		f.Colors[3*i+2] = float32(c.B)
	}

	return f, nil
}

// MaxJitter is the largest per-axis offset a point at the given radius can get.
func MaxJitter(radius float64, p GalaxyParams) float64 {
	return (0.1 + radius) * p.SpreadRange
}

func jitter(radius float64, p GalaxyParams, rng Source) float64 {
	mag := MaxJitter(radius, p) * math.Pow(rng.Float64(), p.Spread)
	return mag * sign(rng.Float64()-0.5)
}

func radiusFraction(r, outer float64) float64 {
	if outer == 0 {
		return 0
	}
	return clamp01(r / outer)
}
