package sample_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/sample"
)

func TestParse_SortsStably(t *testing.T) {
	in := `# count size low high
5	10	1	1
0 10 0 0

10 10 2 2
3 10 1 1
`
	obs, err := sample.Parse(strings.NewReader(in), sample.DefaultScale())
	require.NoError(t, err)
	require.Len(t, obs, 4)

	assert.Equal(t, []int{0, 5, 3, 10}, counts(obs))
	assert.Equal(t, []float64{0, 1, 1, 2}, times(obs))
	assert.InDelta(t, 0.5, obs[1].Frequency(), 1e-15)
}

func TestParse_ScaleConversion(t *testing.T) {
	scale := sample.Scale{GenerationTime: 25, N0: 10000}
	obs, err := sample.Parse(strings.NewReader("1 4 500000 500000\n"), scale)
	require.NoError(t, err)
	assert.Equal(t, 500000.0/(25*2*10000), obs[0].Time)
	assert.Equal(t, 500000.0, obs[0].LowRaw)
}

func TestParse_MidpointWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	obs, err := sample.Parse(strings.NewReader("1 4 2 4\n"), sample.DefaultScale(), sample.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 3.0, obs[0].Time)
	assert.True(t, obs[0].Uncertain())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"line":1`)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"count exceeds size", "11 10 0 0\n", sample.ErrCountRange},
		{"negative count", "-1 10 0 0\n", sample.ErrCountRange},
		{"empty sample", "0 0 0 0\n", sample.ErrCountRange},
		{"inverted time", "1 10 5 4\n", sample.ErrTimeRange},
		{"too few fields", "1 10 5\n", sample.ErrMalformed},
		{"not a number", "a 10 0 0\n", sample.ErrMalformed},
		{"float count", "1.5 10 0 0\n", sample.ErrMalformed},
		{"empty", "\n# only comments\n", sample.ErrNoObservations},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sample.Parse(strings.NewReader(tc.in), sample.DefaultScale())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ErrorNamesLine(t *testing.T) {
	_, err := sample.Parse(strings.NewReader("0 10 0 0\n5 10 1 1\n11 10 2 2\n"), sample.DefaultScale())
	require.Error(t, err)
	assert.ErrorIs(t, err, sample.ErrInvalidRecord)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_BadScale(t *testing.T) {
	_, err := sample.Parse(strings.NewReader("0 10 0 0\n"), sample.Scale{GenerationTime: 0, N0: 1})
	assert.ErrorIs(t, err, sample.ErrInvalidScale)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := sample.ParseFile("does-not-exist.tsv", sample.DefaultScale())
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	name := t.TempDir() + "/obs.tsv"
	require.NoError(t, writeFile(name, "0 10 0 0\n5 10 1 1\n"))

	obs, err := sample.ParseFile(name, sample.DefaultScale())
	require.NoError(t, err)
	assert.Len(t, obs, 2)
}

func TestScale(t *testing.T) {
	assert.Equal(t, 1.0, sample.DefaultScale().Factor())
	assert.Equal(t, 500000.0, sample.Scale{GenerationTime: 25, N0: 10000}.Factor())
	assert.NoError(t, sample.DefaultScale().Validate())
}
