package path_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/path"
)

// TestJSON_Shape pins the wire field names.
func TestJSON_Shape(t *testing.T) {
	p := mustShifted(t, []float64{0, 0.5}, []float64{1, 2})
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":[0,0.5],"trajectory":[1,2]}`, string(data))

	var q path.Path
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, p.Points(), q.Points())
}

// TestFromDump_Validates rejects malformed dumps.
func TestFromDump_Validates(t *testing.T) {
	var p path.Path
	assert.ErrorIs(t, p.FromDump(&path.Dump{Time: []float64{0, 1}, Trajectory: []float64{1}}), path.ErrDimensionMismatch)
	assert.ErrorIs(t, p.FromDump(&path.Dump{Time: []float64{1, 0}, Trajectory: []float64{1, 2}}), path.ErrNotIncreasing)
	assert.ErrorIs(t, p.FromDump(nil), path.ErrNilPath)

	var q path.Path
	assert.Error(t, json.Unmarshal([]byte(`{"time":[0,0],"trajectory":[1,2]}`), &q))
}
