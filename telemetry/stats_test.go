package telemetry

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/pthm-cable/starfield/field"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"below range", []float64{1, 2, 3}, -0.5, 1.0},
		{"above range", []float64{1, 2, 3}, 1.5, 3.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 2.5},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.0},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
		{"p75 interpolated", []float64{0, 10}, 0.75, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeGenerationStats_Known(t *testing.T) {
	f := &field.PointField{
		Positions: []float32{
			3, 0, 4,
			0, 2, 0,
		},
		Colors: make([]float32, 6),
	}

	s := ComputeGenerationStats("galaxy", "gen-1", f, 1500*time.Microsecond)

	if s.Points != 2 {
		t.Errorf("Points = %d, want 2", s.Points)
	}
	if s.Kind != "galaxy" || s.Generation != "gen-1" {
		t.Errorf("labels = %q/%q", s.Kind, s.Generation)
	}
	if math.Abs(s.DurationMS-1.5) > 1e-9 {
		t.Errorf("DurationMS = %v, want 1.5", s.DurationMS)
	}
	if math.Abs(s.RadiusMean-2.5) > 1e-6 {
		t.Errorf("RadiusMean = %v, want 2.5", s.RadiusMean)
	}
	if math.Abs(s.RadiusMax-5) > 1e-6 {
		t.Errorf("RadiusMax = %v, want 5", s.RadiusMax)
	}
	// Sample std of {0, 5}
	if math.Abs(s.RadiusStd-5/math.Sqrt2) > 1e-6 {
		t.Errorf("RadiusStd = %v, want %v", s.RadiusStd, 5/math.Sqrt2)
	}
	if math.Abs(s.HeightStd-math.Sqrt2) > 1e-6 {
		t.Errorf("HeightStd = %v, want %v", s.HeightStd, math.Sqrt2)
	}
}

func TestComputeGenerationStats_Empty(t *testing.T) {
	s := ComputeGenerationStats("particles", "gen-0", nil, 0)
	if s.Points != 0 || s.RadiusMean != 0 || s.RadiusMax != 0 {
		t.Errorf("expected zero stats for empty field, got %+v", s)
	}
}

func TestComputeGenerationStats_SinglePoint(t *testing.T) {
	f := &field.PointField{
		Positions: []float32{0, 1, 2},
		Colors:    make([]float32, 3),
	}
	s := ComputeGenerationStats("particles", "gen-0", f, 0)
	if s.RadiusStd != 0 || s.HeightStd != 0 {
		t.Errorf("single point should have zero spread, got %+v", s)
	}
	if math.Abs(s.RadiusMean-2) > 1e-6 {
		t.Errorf("RadiusMean = %v, want 2", s.RadiusMean)
	}
}

func TestComputeGenerationStats_Galaxy(t *testing.T) {
	p := field.DefaultGalaxyParams()
	p.Count = 2000
	f, err := field.GenerateSpiral(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateSpiral: %v", err)
	}

	s := ComputeGenerationStats("galaxy", "g", f, time.Millisecond)

	if s.Points != p.Count {
		t.Errorf("Points = %d, want %d", s.Points, p.Count)
	}
	if !(s.RadiusP10 <= s.RadiusP50 && s.RadiusP50 <= s.RadiusP90 && s.RadiusP90 <= s.RadiusMax) {
		t.Errorf("percentiles not ordered: p10=%v p50=%v p90=%v max=%v",
			s.RadiusP10, s.RadiusP50, s.RadiusP90, s.RadiusMax)
	}
	limit := p.Radius + field.MaxJitter(p.Radius, p)*math.Sqrt2
	if s.RadiusMax > limit+1e-4 {
		t.Errorf("RadiusMax = %v exceeds %v", s.RadiusMax, limit)
	}
}
