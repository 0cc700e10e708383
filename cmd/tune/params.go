// Package main fits galaxy shape parameters to a target radial profile with CMA-ES.
package main

import (
	"github.com/pthm-cable/starfield/field"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name string  // Config key under galaxy
	Min  float64 // Lower bound
	Max  float64 // Upper bound
}

// ParamVector holds the set of tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable galaxy parameters.
// Count, spin and colours do not change the radial profile and stay fixed.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "radius", Min: 0.5, Max: 20},
			{Name: "spread_range", Min: 0.01, Max: 1},
			{Name: "spread", Min: 1, Max: 10},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// Apply returns p with the clamped values substituted. Order matches Specs.
func (pv *ParamVector) Apply(p field.GalaxyParams, values []float64) field.GalaxyParams {
	clamped := pv.Clamp(values)
	p.Radius = clamped[0]
	p.SpreadRange = clamped[1]
	p.Spread = clamped[2]
	return p
}

// Extract reads the tunable values from p.
func (pv *ParamVector) Extract(p field.GalaxyParams) []float64 {
	return []float64{p.Radius, p.SpreadRange, p.Spread}
}
