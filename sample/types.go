package sample

import (
	"fmt"
	"math"
)

// Observation is one allele-count sample.
type Observation struct {
	Count   int     `json:"count" yaml:"count"`
	Size    int     `json:"size" yaml:"size"`
	Time    float64 `json:"time" yaml:"time"`
	LowRaw  float64 `json:"lowRaw" yaml:"lowRaw"`
	HighRaw float64 `json:"highRaw" yaml:"highRaw"`
}

// Frequency returns Count/Size, or 0 for an empty sample.
func (o Observation) Frequency() float64 {
	if o.Size == 0 {
		return 0
	}

	return float64(o.Count) / float64(o.Size)
}

// Uncertain reports whether the raw time was a range.
func (o Observation) Uncertain() bool { return o.LowRaw != o.HighRaw }

// Validate checks the count and time ranges. An empty sample is a count
// range error.
func (o Observation) Validate() error {
	if o.Size < 1 {
		return fmt.Errorf("size %d: %w", o.Size, ErrCountRange)
	}
	if o.Count < 0 || o.Count > o.Size {
		return fmt.Errorf("count %d, size %d: %w", o.Count, o.Size, ErrCountRange)
	}
	if o.LowRaw > o.HighRaw {
		return fmt.Errorf("time [%v, %v]: %w", o.LowRaw, o.HighRaw, ErrTimeRange)
	}

	return nil
}

// Default scale parameters.
const (
	DefaultGenerationTime = 1.0
	DefaultN0             = 0.5
)

// Scale converts raw times into diffusion units.
type Scale struct {
	GenerationTime float64 `json:"generationTime" yaml:"generationTime"`
	N0             float64 `json:"n0" yaml:"n0"`
}

// DefaultScale returns the identity scale.
func DefaultScale() Scale {
	return Scale{GenerationTime: DefaultGenerationTime, N0: DefaultN0}
}

// Factor returns GenerationTime·2·N0.
func (s Scale) Factor() float64 { return s.GenerationTime * 2 * s.N0 }

// Validate reports ErrInvalidScale unless both fields are finite and positive.
func (s Scale) Validate() error {
	for _, v := range []float64{s.GenerationTime, s.N0} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("scale %+v: %w", s, ErrInvalidScale)
		}
	}

	return nil
}
