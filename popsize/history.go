// SPDX-License-Identifier: MIT

package popsize

import (
	"fmt"
	"math"
	"sort"
)

// Epoch is a constant-size stretch beginning at Start.
type Epoch struct {
	Start float64 `json:"start" yaml:"start"`
	Size  float64 `json:"size" yaml:"size"`
}

// History is an immutable, piecewise-constant size function.
type History struct {
	epochs []Epoch
}

// Constant returns the history ν(t) = 1.
func Constant() *History {
	return &History{epochs: []Epoch{{Start: math.Inf(-1), Size: 1}}}
}

// New validates and copies epochs.
//
// Errors: ErrNoEpochs, or ErrInvalidEpoch when a size is not finite and
// positive or starts are not strictly increasing.
func New(epochs []Epoch) (*History, error) {
	if len(epochs) == 0 {
		return nil, ErrNoEpochs
	}
	for k, e := range epochs {
		if math.IsNaN(e.Size) || math.IsInf(e.Size, 0) || e.Size <= 0 {
			return nil, fmt.Errorf("New: epoch %d size %v: %w", k, e.Size, ErrInvalidEpoch)
		}
		if math.IsNaN(e.Start) {
			return nil, fmt.Errorf("New: epoch %d start is NaN: %w", k, ErrInvalidEpoch)
		}
		if k > 0 && !(epochs[k-1].Start < e.Start) {
			return nil, fmt.Errorf("New: epoch %d starts at %v after %v: %w", k, e.Start, epochs[k-1].Start, ErrInvalidEpoch)
		}
	}

	return &History{epochs: append([]Epoch(nil), epochs...)}, nil
}

// Epochs returns a copy of the epochs.
func (h *History) Epochs() []Epoch {
	return append([]Epoch(nil), h.epochs...)
}

// Size returns the relative size in force at t.
func (h *History) Size(t float64) float64 {
	// first epoch strictly after t
	k := sort.Search(len(h.epochs), func(i int) bool { return h.epochs[i].Start > t })
	if k == 0 {
		return h.epochs[0].Size
	}

	return h.epochs[k-1].Size
}

// BreakTimes returns [t0, changes in (t0, t1)..., t1].
func (h *History) BreakTimes(t0, t1 float64) ([]float64, error) {
	if math.IsNaN(t0) || math.IsNaN(t1) || math.IsInf(t0, 0) || math.IsInf(t1, 0) || !(t0 < t1) {
		return nil, fmt.Errorf("BreakTimes(%v, %v): %w", t0, t1, ErrBadInterval)
	}
	out := []float64{t0}
	for _, e := range h.epochs {
		if e.Start > t0 && e.Start < t1 {
			out = append(out, e.Start)
		}
	}

	return append(out, t1), nil
}
