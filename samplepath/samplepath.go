package samplepath

import (
	"github.com/katalvlaran/wfpath/measure"
	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/sample"
)

// Len returns the number of trajectory points.
func (s *SamplePath) Len() int { return s.p.Len() }

// Time returns the time of point k.
func (s *SamplePath) Time(k int) float64 { return s.p.Time(k) }

// Value returns the latent value of point k.
func (s *SamplePath) Value(k int) float64 { return s.p.Value(k) }

// Times returns a copy of the time axis.
func (s *SamplePath) Times() []float64 { return s.p.Times() }

// Values returns a copy of the latent trajectory.
func (s *SamplePath) Values() []float64 { return s.p.Values() }

// Frequencies returns the trajectory mapped back by (1 − cos v)/2.
func (s *SamplePath) Frequencies() []float64 {
	out := s.p.Values()
	for k, v := range out {
		out[k] = measure.Frequency(v)
	}

	return out
}

// Path returns an independent copy of the underlying trajectory.
func (s *SamplePath) Path() *path.Path { return s.p.Clone() }

// Subpath returns the half-open slice [i, j) as a new Path.
func (s *SamplePath) Subpath(i, j int) (*path.Path, error) { return s.p.Subpath(i, j) }

// TimeSlice returns times on the closed range [i, j].
func (s *SamplePath) TimeSlice(i, j int) ([]float64, error) { return s.p.TimeSlice(i, j) }

// ValueSlice returns latent values on the closed range [i, j].
func (s *SamplePath) ValueSlice(i, j int) ([]float64, error) { return s.p.ValueSlice(i, j) }

// NumObservations returns the number of observations.
func (s *SamplePath) NumObservations() int { return len(s.obs) }

// Observations returns a copy of the time-sorted observations.
func (s *SamplePath) Observations() []sample.Observation {
	return append([]sample.Observation(nil), s.obs...)
}

// SampleIndex returns the trajectory index of observation i, or −1 when it
// predates the allele age.
func (s *SamplePath) SampleIndex(i int) int { return s.index[i] }

// SampleIndices returns a copy of every observation index.
func (s *SamplePath) SampleIndices() []int {
	return append([]int(nil), s.index...)
}

// FirstNonzero returns the first observation with a nonzero count, or −1.
func (s *SamplePath) FirstNonzero() int { return s.firstNonzero }

// AlleleAge returns the current allele age.
func (s *SamplePath) AlleleAge() float64 { return s.age }

// Pending returns the kind of the mutation awaiting Reset or Commit.
func (s *SamplePath) Pending() path.MutationKind { return s.p.Pending().Kind }
