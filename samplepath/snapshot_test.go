package samplepath_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/samplepath"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	sp := mustBuild(t)
	prefix := mustPoints(t, []float64{0.5}, []float64{0.3})
	require.NoError(t, sp.SetAlleleAge(0.5, prefix, 2))
	sp.Commit()

	data, err := json.Marshal(sp.Snapshot())
	require.NoError(t, err)

	var snap samplepath.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	got, err := samplepath.Restore(&snap)
	require.NoError(t, err)

	assert.Equal(t, sp.Times(), got.Times())
	assert.Equal(t, sp.Values(), got.Values())
	assert.Equal(t, sp.SampleIndices(), got.SampleIndices())
	assert.Equal(t, sp.AlleleAge(), got.AlleleAge())
	assert.Equal(t, sp.FirstNonzero(), got.FirstNonzero())
	assert.Equal(t, sp.LogLikelihoods(), got.LogLikelihoods())
}

func TestRestore_Errors(t *testing.T) {
	_, err := samplepath.Restore(nil)
	assert.ErrorIs(t, err, samplepath.ErrBadSnapshot)

	snap := mustBuild(t).Snapshot()
	snap.SampleIndex = snap.SampleIndex[:2]
	_, err = samplepath.Restore(snap)
	assert.ErrorIs(t, err, samplepath.ErrBadSnapshot)

	snap = mustBuild(t).Snapshot()
	snap.SampleIndex[1] = 3
	_, err = samplepath.Restore(snap)
	assert.ErrorIs(t, err, samplepath.ErrBadSnapshot)

	snap = mustBuild(t).Snapshot()
	snap.Observations[1].Time = 1.1
	_, err = samplepath.Restore(snap)
	assert.ErrorIs(t, err, samplepath.ErrUnalignedObservation)
}
