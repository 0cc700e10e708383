// Package telemetry records generation statistics and frame timing, and
// writes them as CSV.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/starfield/field"
)

// GenerationStats summarises one generated point field.
type GenerationStats struct {
	Generation string  `csv:"generation"`
	Kind       string  `csv:"kind"`
	Points     int     `csv:"points"`
	DurationMS float64 `csv:"duration_ms"`

	// Radial distance from the y axis, sqrt(x^2 + z^2)
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`
	RadiusMax  float64 `csv:"radius_max"`

	// Height spread
	HeightStd float64 `csv:"height_std"`
}

// ComputeGenerationStats measures a field. Empty fields give zero stats.
func ComputeGenerationStats(kind, generation string, f *field.PointField, took time.Duration) GenerationStats {
	s := GenerationStats{
		Generation: generation,
		Kind:       kind,
		Points:     f.Len(),
		DurationMS: float64(took) / float64(time.Millisecond),
	}
	n := f.Len()
	if n == 0 {
		return s
	}

	radii := make([]float64, n)
	heights := make([]float64, n)
	for i := 0; i < n; i++ {
		radii[i] = f.RadialDistance(i)
		_, y, _ := f.Position(i)
		heights[i] = float64(y)
	}

	s.RadiusMean, s.RadiusStd = meanStd(radii)
	_, s.HeightStd = meanStd(heights)

	sort.Float64s(radii)
	s.RadiusP10 = Percentile(radii, 0.10)
	s.RadiusP50 = Percentile(radii, 0.50)
	s.RadiusP90 = Percentile(radii, 0.90)
	s.RadiusMax = radii[n-1]
	return s
}

// meanStd returns the mean and sample standard deviation; a single value has zero spread.
func meanStd(x []float64) (mean, std float64) {
	if len(x) < 2 {
		if len(x) == 1 {
			return x[0], 0
		}
		return 0, 0
	}
	return stat.MeanStdDev(x, nil)
}

// Percentile returns the p-th quantile of sorted data. p should be in [0, 1].
// Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("generation", s.Generation),
		slog.String("kind", s.Kind),
		slog.Int("points", s.Points),
		slog.Float64("duration_ms", s.DurationMS),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_p50", s.RadiusP50),
		slog.Float64("radius_p90", s.RadiusP90),
		slog.Float64("radius_max", s.RadiusMax),
	)
}
