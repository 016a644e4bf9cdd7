// SPDX-License-Identifier: MIT

package samplepath

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wfpath/path"
)

// Modify overwrites [at, at+other.Len()) with other's points. The times of
// indexed observations inside the region must not move.
//
// Modify(nil, -1) is Commit.
//
// Errors: path.ErrNilPath, path.ErrOutOfRange, ErrUnalignedObservation. On
// error the SamplePath is unchanged, including any earlier pending mutation.
//
// Complexity: O(other.Len() + NumObservations).
func (s *SamplePath) Modify(other *path.Path, at int) error {
	if other == nil && at == -1 {
		s.Commit()

		return nil
	}
	var before []float64
	if other != nil && at >= 0 && at+other.Len() <= s.p.Len() {
		before = s.indexedTimes()
	}
	prev := s.p.Pending()
	if err := s.p.Modify(other, at); err != nil {
		return fmt.Errorf("Modify: %w", err)
	}
	for i, k := range s.index {
		if k >= 0 && s.p.Time(k) != before[i] {
			s.p.Reset()
			s.restorePending(prev)
			return fmt.Errorf("Modify: observation %d moved from t=%v: %w", i, before[i], ErrUnalignedObservation)
		}
	}
	// any earlier prefix change can no longer be undone
	s.oldAge = s.age
	s.rec.Mutation(path.InteriorReplace)

	return nil
}

// SetAlleleAge replaces points [0..through] with prefix, moves the allele
// age to age and re-derives every observation index: observations before
// age get −1, the rest the index whose time equals theirs.
//
// Errors: path.ErrNilPath, path.ErrOutOfRange, ErrUnalignedObservation. On
// error the SamplePath is unchanged, including any earlier pending mutation.
//
// Complexity: O(Len + NumObservations).
func (s *SamplePath) SetAlleleAge(age float64, prefix *path.Path, through int) error {
	oldAge, prevOldAge := s.age, s.oldAge
	prev := s.p.Pending()
	if err := s.p.ReplacePrefix(prefix, through); err != nil {
		return fmt.Errorf("SetAlleleAge: %w", err)
	}
	s.oldAge, s.age = oldAge, age
	if err := s.reindex(); err != nil {
		s.rollback()
		s.oldAge = prevOldAge
		s.restorePending(prev)
		return fmt.Errorf("SetAlleleAge(%v): %w", age, err)
	}
	s.rec.Mutation(path.PrefixReplace)
	s.logger.Debug("allele age moved",
		slog.Float64("from", oldAge),
		slog.Float64("to", age),
		slog.Int("points", s.p.Len()))

	return nil
}

// Reset undoes the pending mutation, if any.
func (s *SamplePath) Reset() {
	if kind := s.rollback(); kind != path.NoMutation {
		s.rec.Rollback(kind)
	}
}

// Commit accepts the pending mutation.
func (s *SamplePath) Commit() {
	if s.p.Pending().Kind != path.NoMutation {
		s.rec.Commit()
	}
	s.p.Commit()
	s.oldAge = s.age
}

func (s *SamplePath) rollback() path.MutationKind {
	kind := s.p.Pending().Kind
	s.p.Reset()
	if kind == path.PrefixReplace {
		s.age = s.oldAge
		if err := s.reindex(); err != nil {
			// the restored prefix was aligned before the mutation
			s.logger.Error("reindex after rollback", slog.Any("err", err))
		}
	}

	return kind
}

// restorePending reinstalls an undo slot saved before a mutation that was
// rolled back. The rolled-back points are the ones prev was taken on.
func (s *SamplePath) restorePending(prev path.Mutation) {
	if err := s.p.SetPending(prev); err != nil {
		s.logger.Error("restore pending mutation", slog.Any("err", err))
	}
}

// reindex recomputes every observation index from the current age and time
// axis. s.index is left untouched on error.
func (s *SamplePath) reindex() error {
	index := make([]int, len(s.obs))
	n := s.p.Len()
	k := 0
	for i, o := range s.obs {
		if o.Time < s.age {
			index[i] = -1
			continue
		}
		for k < n && s.p.Time(k) < o.Time {
			k++
		}
		if k == n || s.p.Time(k) != o.Time {
			return fmt.Errorf("observation %d at t=%v: %w", i, o.Time, ErrUnalignedObservation)
		}
		index[i] = k
	}
	s.index = index

	return nil
}

// indexedTimes returns the time under each observation index, 0 for
// unindexed ones.
func (s *SamplePath) indexedTimes() []float64 {
	out := make([]float64, len(s.index))
	for i, k := range s.index {
		if k >= 0 {
			out[i] = s.p.Time(k)
		}
	}

	return out
}
