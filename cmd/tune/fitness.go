package main

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/starfield/field"
	"github.com/pthm-cable/starfield/telemetry"
)

// Target is the radial profile to fit. Zero fields are ignored.
type Target struct {
	RadiusP50 float64
	RadiusP90 float64
	HeightStd float64
}

// FitnessEvaluator generates galaxies and scores them against a target.
type FitnessEvaluator struct {
	params *ParamVector
	base   field.GalaxyParams
	seeds  []int64
	target Target

	mu        sync.Mutex
	lastStats telemetry.GenerationStats
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, base field.GalaxyParams, seeds []int64, target Target) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		base:   base,
		seeds:  seeds,
		target: target,
	}
}

// LastStats returns the statistics of the first seed in the most recent evaluation.
func (fe *FitnessEvaluator) LastStats() telemetry.GenerationStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// Evaluate computes the loss for raw parameter values (lower = better).
// The loss is the mean over seeds of squared relative errors.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	p := fe.params.Apply(fe.base, x)

	// Run all seeds in parallel
	losses := make([]float64, len(fe.seeds))
	stats := make([]telemetry.GenerationStats, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			f, err := field.GenerateSpiral(p, rand.New(rand.NewSource(s)))
			if err != nil {
				losses[idx] = math.Inf(1)
				return
			}
			stats[idx] = telemetry.ComputeGenerationStats("galaxy", "", f, 0)
			losses[idx] = fe.loss(stats[idx])
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for _, l := range losses {
		total += l
	}

	fe.mu.Lock()
	if len(stats) > 0 {
		fe.lastStats = stats[0]
	}
	fe.mu.Unlock()

	return total / float64(len(fe.seeds))
}

func (fe *FitnessEvaluator) loss(s telemetry.GenerationStats) float64 {
	var l float64
	l += relSq(s.RadiusP50, fe.target.RadiusP50)
	l += relSq(s.RadiusP90, fe.target.RadiusP90)
	l += relSq(s.HeightStd, fe.target.HeightStd)
	return l
}

// relSq is the squared relative error of got against want, or 0 when want is unset.
func relSq(got, want float64) float64 {
	if want == 0 {
		return 0
	}
	d := (got - want) / want
	return d * d
}
