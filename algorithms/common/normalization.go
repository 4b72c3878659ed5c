package common

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// NormalizationType defines how raw samples are brought into [0,1]
type NormalizationType int

const (
	// None passes samples through; they must already lie in [0,1]
	None NormalizationType = iota

	// MinMax maps [min,max] of the signal onto [0,1]
	MinMax

	// Clip clamps every sample into [0,1]
	Clip
)

func (t NormalizationType) String() string {
	switch t {
	case None:
		return "none"
	case MinMax:
		return "minmax"
	case Clip:
		return "clip"
	default:
		return "unknown"
	}
}

// ParseNormalizationType maps "none", "minmax" or "clip" to a NormalizationType
func ParseNormalizationType(name string) (NormalizationType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "minmax", "min-max":
		return MinMax, nil
	case "clip":
		return Clip, nil
	default:
		return None, fmt.Errorf("unknown normalization %q", name)
	}
}

// Normalizer prepares raw signals for [0,1] binning
type Normalizer struct {
	method NormalizationType
}

// NewNormalizer creates a new normalizer
func NewNormalizer(method NormalizationType) *Normalizer {
	return &Normalizer{
		method: method,
	}
}

// Normalize returns a normalized copy of signal; signal itself is not modified
func (n *Normalizer) Normalize(signal []float64) []float64 {
	switch n.method {
	case MinMax:
		return MinMaxNormalize(signal)
	case Clip:
		return ClipUnit(signal)
	default:
		out := make([]float64, len(signal))
		copy(out, signal)
		return out
	}
}

// MinMaxRange returns the smallest and largest sample
func MinMaxRange(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0, 0
	}
	return floats.Min(data), floats.Max(data)
}

// MinMaxNormalize normalizes data to [0, 1] range
func MinMaxNormalize(data []float64) []float64 {
	normalized := make([]float64, len(data))
	if len(data) == 0 {
		return normalized
	}

	min, max := MinMaxRange(data)
	if max == min {
		// Constant signal: all zeros
		return normalized
	}

	span := max - min
	for i, val := range data {
		normalized[i] = (val - min) / span
	}

	return normalized
}

// ClipUnit clamps every sample into [0,1]
func ClipUnit(data []float64) []float64 {
	clipped := make([]float64, len(data))
	for i, val := range data {
		clipped[i] = Clamp(val, 0, 1)
	}
	return clipped
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
