// Package main provides CMA-ES search for slime physics parameters that
// settle into a stable, cohesive body.
package main

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "damping", Min: 0.90, Max: 0.999, Default: 0.98},
			{Name: "cohesion", Min: 0.2, Max: 4.0, Default: 1.2},
			{Name: "repulsion", Min: 20, Max: 160, Default: 60},
			{Name: "interaction_radius", Min: 30, Max: 120, Default: 60},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the raw default values.
func (pv *ParamVector) DefaultVector() []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = s.Default
	}
	return out
}

// Normalize maps raw values into [0,1] per spec bounds.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = (raw[i] - s.Min) / (s.Max - s.Min)
	}
	return out
}

// Denormalize maps [0,1] values back to raw, clamped into bounds.
func (pv *ParamVector) Denormalize(x []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		v := s.Min + x[i]*(s.Max-s.Min)
		if v < s.Min {
			v = s.Min
		}
		if v > s.Max {
			v = s.Max
		}
		out[i] = v
	}
	return out
}
