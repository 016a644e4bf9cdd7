package samplepath

import (
	"fmt"

	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/sample"
)

// Snapshot is the serialisable state of a SamplePath. Pending mutations are
// not part of it.
type Snapshot struct {
	Path         *path.Dump           `json:"path" yaml:"path"`
	Observations []sample.Observation `json:"observations" yaml:"observations"`
	SampleIndex  []int                `json:"sampleIndex" yaml:"sampleIndex"`
	AlleleAge    float64              `json:"alleleAge" yaml:"alleleAge"`
	FirstNonzero int                  `json:"firstNonzero" yaml:"firstNonzero"`
}

// Snapshot copies the current state, pending changes included.
func (s *SamplePath) Snapshot() *Snapshot {
	return &Snapshot{
		Path:         s.p.Dump(),
		Observations: s.Observations(),
		SampleIndex:  s.SampleIndices(),
		AlleleAge:    s.age,
		FirstNonzero: s.firstNonzero,
	}
}

// Restore rebuilds a SamplePath from a snapshot. Indices are re-derived from
// the allele age and must agree with the stored ones.
//
// Complexity: O(Len + NumObservations).
func Restore(snap *Snapshot, opts ...Option) (*SamplePath, error) {
	if snap == nil || snap.Path == nil {
		return nil, fmt.Errorf("Restore: %w", ErrBadSnapshot)
	}
	if len(snap.Observations) != len(snap.SampleIndex) {
		return nil, fmt.Errorf("Restore: %d observations, %d indices: %w",
			len(snap.Observations), len(snap.SampleIndex), ErrBadSnapshot)
	}
	cfg := newConfig(opts...)
	p := &path.Path{}
	if err := p.FromDump(snap.Path); err != nil {
		return nil, fmt.Errorf("Restore: %w", err)
	}
	s := &SamplePath{
		p:            p,
		obs:          append([]sample.Observation(nil), snap.Observations...),
		age:          snap.AlleleAge,
		oldAge:       snap.AlleleAge,
		firstNonzero: snap.FirstNonzero,
		rec:          cfg.rec,
		logger:       cfg.logger,
	}
	if err := s.reindex(); err != nil {
		return nil, fmt.Errorf("Restore: %w", err)
	}
	for i, k := range s.index {
		if snap.SampleIndex[i] != k {
			return nil, fmt.Errorf("Restore: observation %d stored at %d, found at %d: %w",
				i, snap.SampleIndex[i], k, ErrBadSnapshot)
		}
	}

	return s, nil
}
