package main

import (
	"github.com/pthm-cable/constellation/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Force field
			{Name: "spring_constant", Path: "layout.spring_constant", Min: 0.0002, Max: 0.005, Default: 0.001},
			{Name: "shaping", Path: "layout.shaping", Min: 0.2, Max: 0.9, Default: 0.64},
			{Name: "repulsion_base", Path: "layout.repulsion_base", Min: 100, Max: 2000, Default: 500},
			{Name: "center_strength", Path: "layout.center_strength", Min: 0.0001, Max: 0.002, Default: 0.0005},
			// Motion
			{Name: "damping", Path: "integrator.damping", Min: 0.7, Max: 0.95, Default: 0.85},
			// Annealing
			{Name: "cooling_rate", Path: "annealing.cooling_rate", Min: 0.98, Max: 0.999, Default: 0.995},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
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
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Layout.SpringConstant = clamped[0]
	cfg.Layout.Shaping = clamped[1]
	cfg.Layout.RepulsionBase = clamped[2]
	cfg.Layout.CenterStrength = clamped[3]
	cfg.Integrator.Damping = clamped[4]
	cfg.Annealing.CoolingRate = clamped[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Layout.SpringConstant,
		cfg.Layout.Shaping,
		cfg.Layout.RepulsionBase,
		cfg.Layout.CenterStrength,
		cfg.Integrator.Damping,
		cfg.Annealing.CoolingRate,
	}
}
