package samplepath

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/wfpath/measure"
)

// LogLikelihood returns the log-probability of observation i given the
// current trajectory. Panics when i is out of range.
func (s *SamplePath) LogLikelihood(i int) float64 {
	o := s.obs[i]
	k := s.index[i]
	if k < 0 {
		if o.Count == 0 {
			return 0
		}

		return math.Inf(-1)
	}

	return binomialLogProb(o.Count, o.Size, measure.Frequency(s.p.Value(k)))
}

// LogLikelihoods returns LogLikelihood for every observation.
func (s *SamplePath) LogLikelihoods() []float64 {
	out := make([]float64, len(s.obs))
	for i := range s.obs {
		out[i] = s.LogLikelihood(i)
	}

	return out
}

// TotalLogLikelihood sums LogLikelihoods.
//
// Complexity: O(NumObservations).
func (s *SamplePath) TotalLogLikelihood() float64 {
	var sum float64
	for i := range s.obs {
		sum += s.LogLikelihood(i)
	}

	return sum
}

// binomialLogProb handles p ∈ {0, 1} explicitly; distuv yields NaN there.
func binomialLogProb(count, size int, p float64) float64 {
	switch {
	case p <= 0:
		if count == 0 {
			return 0
		}
		return math.Inf(-1)
	case p >= 1:
		if count == size {
			return 0
		}
		return math.Inf(-1)
	}

	return distuv.Binomial{N: float64(size), P: p}.LogProb(float64(count))
}
