package samplepath_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/measure"
	"github.com/katalvlaran/wfpath/path"
	"github.com/katalvlaran/wfpath/popsize"
	"github.com/katalvlaran/wfpath/sample"
	"github.com/katalvlaran/wfpath/samplepath"
)

func TestBuild_ThreeObservations(t *testing.T) {
	sp := mustBuild(t)

	require.Equal(t, 10, sp.Len())
	assert.Equal(t, []int{0, 4, 9}, sp.SampleIndices())
	assert.Equal(t, 0.0, sp.AlleleAge())
	assert.Equal(t, 1, sp.FirstNonzero())

	want := []float64{samplepath.Epsilon, 0.5, 1 - samplepath.Epsilon}
	for i, o := range sp.Observations() {
		k := sp.SampleIndex(i)
		assert.Equal(t, o.Time, sp.Time(k), "observation %d lands on its time", i)
		assert.InDelta(t, want[i], measure.Frequency(sp.Value(k)), 1e-12)
	}
	assert.NoError(t, sp.Path().Validate())
}

func TestBuild_DefaultGrid(t *testing.T) {
	sp, err := samplepath.Build(threeObservations(), popsize.Constant(), linearProposer{})
	require.NoError(t, err)

	idx := sp.SampleIndices()
	assert.Equal(t, 0, idx[0])
	assert.Less(t, idx[0], idx[1])
	assert.Less(t, idx[1], idx[2])
	assert.Equal(t, sp.Len()-1, idx[2])
	assert.Equal(t, 2.0, sp.Time(sp.Len()-1))
	assert.NoError(t, sp.Path().Validate())
}

func TestBuild_WrightFisherProposer(t *testing.T) {
	w := measure.New(measure.WithSeed(5))
	sp, err := samplepath.Build(threeObservations(), nil, w, samplepath.WithStep(0.01))
	require.NoError(t, err)

	for _, v := range sp.Values() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, math.Pi)
	}
	for _, f := range sp.Frequencies() {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestBuild_SortsInput(t *testing.T) {
	obs := threeObservations()
	obs[0], obs[2] = obs[2], obs[0]

	sp, err := samplepath.Build(obs, nil, linearProposer{}, samplepath.WithStep(10), samplepath.WithMinSteps(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 9}, sp.SampleIndices())
	assert.Equal(t, 0, sp.Observations()[0].Count)
	assert.Equal(t, 10, obs[0].Count, "caller's slice is not reordered")
}

func TestBuild_HistoryBreak(t *testing.T) {
	h, err := popsize.New([]popsize.Epoch{{Start: 0, Size: 1}, {Start: 0.5, Size: 2}})
	require.NoError(t, err)

	sp, err := samplepath.Build(threeObservations(), h, linearProposer{},
		samplepath.WithStep(10), samplepath.WithMinSteps(2))
	require.NoError(t, err)

	// [0, 0.5] has 3 points; [0.5, 1] continues with hint 0.25 and 4 points.
	assert.Equal(t, 0.5, sp.Time(2))
	assert.Equal(t, 5, sp.SampleIndex(1))
	assert.Equal(t, sp.Len()-1, sp.SampleIndex(2))
	assert.NoError(t, sp.Path().Validate())
}

func TestBuild_Errors(t *testing.T) {
	obs := threeObservations()

	_, err := samplepath.Build(obs[:1], nil, linearProposer{})
	assert.ErrorIs(t, err, samplepath.ErrTooFewObservations)

	dup := []sample.Observation{{Count: 1, Size: 2, Time: 1}, {Count: 1, Size: 2, Time: 1}}
	_, err = samplepath.Build(dup, nil, linearProposer{})
	assert.ErrorIs(t, err, samplepath.ErrDegenerateInterval)

	_, err = samplepath.Build(obs, nil, nil)
	assert.ErrorIs(t, err, path.ErrNilPath)

	_, err = samplepath.Build(obs, fixedBreaks{0, 1}, linearProposer{})
	assert.ErrorIs(t, err, samplepath.ErrBreakTimes, "second pair gets [0, 1] for [1, 2]")

	_, err = samplepath.Build(obs, fixedBreaks{}, linearProposer{})
	assert.ErrorIs(t, err, samplepath.ErrBreakTimes)

	over := threeObservations()
	over[1].Count = 11
	_, err = samplepath.Build(over, nil, linearProposer{})
	assert.ErrorIs(t, err, sample.ErrCountRange, "count above size")

	empty := threeObservations()
	empty[2].Size, empty[2].Count = 0, 0
	_, err = samplepath.Build(empty, nil, linearProposer{})
	assert.ErrorIs(t, err, sample.ErrCountRange, "empty sample")
}

type unorderedBreaks struct{}

func (unorderedBreaks) BreakTimes(t0, t1 float64) ([]float64, error) {
	return []float64{t0, t1 + 1, t1}, nil
}

type failingBreaks struct{}

var errModel = errors.New("model error")

func (failingBreaks) BreakTimes(float64, float64) ([]float64, error) { return nil, errModel }

func TestBuild_BreakTimerErrors(t *testing.T) {
	_, err := samplepath.Build(threeObservations(), unorderedBreaks{}, linearProposer{})
	assert.ErrorIs(t, err, samplepath.ErrBreakTimes)

	_, err = samplepath.Build(threeObservations(), failingBreaks{}, linearProposer{})
	assert.ErrorIs(t, err, samplepath.ErrBreakTimes)
	assert.ErrorIs(t, err, errModel)
}

func TestBuild_BridgeFailure(t *testing.T) {
	rec := newCountingRecorder()
	_, err := samplepath.Build(threeObservations(), nil, failingProposer{}, samplepath.WithRecorder(rec))
	require.Error(t, err)
	assert.ErrorIs(t, err, path.ErrBridgeFailed)
	assert.ErrorIs(t, err, errNumerical)
	assert.Equal(t, 1, rec.failed)
	assert.Equal(t, 0, rec.proposed)
}

func TestBuild_RecordsBridges(t *testing.T) {
	rec := newCountingRecorder()
	mustBuild(t, samplepath.WithRecorder(rec))
	assert.Equal(t, 2, rec.proposed)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { samplepath.WithStep(0) })
	assert.Panics(t, func() { samplepath.WithMinSteps(0) })
	assert.Panics(t, func() { samplepath.WithRecorder(nil) })
	assert.Panics(t, func() { samplepath.WithLogger(nil) })
}
