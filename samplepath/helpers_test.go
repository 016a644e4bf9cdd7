package samplepath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/measure"
	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/sample"
	"github.com/katalvlaran/wfpath/samplepath"
)

// linearProposer interpolates linearly in time, so stitched values at the
// observations are exact.
type linearProposer struct{}

func (linearProposer) ToLatent(x float64) float64 { return measure.Fisher(x) }

func (linearProposer) Bridge(x0, xt, t0, t1 float64, times []float64) ([]float64, error) {
	out := make([]float64, len(times))
	for k, t := range times {
		out[k] = x0 + (xt-x0)*(t-t0)/(t1-t0)
	}
	out[len(out)-1] = xt

	return out, nil
}

var errNumerical = errors.New("numerical failure")

type failingProposer struct{ linearProposer }

func (failingProposer) Bridge(float64, float64, float64, float64, []float64) ([]float64, error) {
	return nil, errNumerical
}

type fixedBreaks []float64

func (f fixedBreaks) BreakTimes(float64, float64) ([]float64, error) { return f, nil }

type countingRecorder struct {
	proposed, failed, commits int
	mutations, rollbacks      map[path.MutationKind]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		mutations: map[path.MutationKind]int{},
		rollbacks: map[path.MutationKind]int{},
	}
}

func (r *countingRecorder) BridgeProposed()              { r.proposed++ }
func (r *countingRecorder) BridgeFailed()                { r.failed++ }
func (r *countingRecorder) Mutation(k path.MutationKind) { r.mutations[k]++ }
func (r *countingRecorder) Rollback(k path.MutationKind) { r.rollbacks[k]++ }
func (r *countingRecorder) Commit()                      { r.commits++ }

// threeObservations is 0/10 at t=0, 5/10 at t=1 and 10/10 at t=2.
func threeObservations() []sample.Observation {
	return []sample.Observation{
		{Count: 0, Size: 10, Time: 0},
		{Count: 5, Size: 10, Time: 1},
		{Count: 10, Size: 10, Time: 2},
	}
}

// mustBuild stitches threeObservations with a large step hint so minSteps=4
// decides the grid: [0,1] gets 5 points (0.25 apart), [1,2] 6 points (0.2 apart).
func mustBuild(t *testing.T, opts ...samplepath.Option) *samplepath.SamplePath {
	t.Helper()
	opts = append([]samplepath.Option{samplepath.WithStep(10), samplepath.WithMinSteps(4)}, opts...)
	sp, err := samplepath.Build(threeObservations(), nil, linearProposer{}, opts...)
	require.NoError(t, err)

	return sp
}

func mustPoints(t *testing.T, times, values []float64) *path.Path {
	t.Helper()
	p, err := path.New(times, values)
	require.NoError(t, err)

	return p
}
