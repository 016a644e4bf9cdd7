package path_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfpath/path"
)

// linearBridger interpolates linearly between the end values; it makes every
// bridge exact and reproducible.
type linearBridger struct{ calls int }

func (b *linearBridger) Bridge(x0, xt, t0, t1 float64, times []float64) ([]float64, error) {
	b.calls++
	out := make([]float64, len(times))
	for k, t := range times {
		out[k] = x0 + (xt-x0)*(t-t0)/(t1-t0)
	}
	out[len(out)-1] = xt

	return out, nil
}

// errBridger always fails.
type errBridger struct{}

var errNumerical = errors.New("numerical blow-up")

func (errBridger) Bridge(float64, float64, float64, float64, []float64) ([]float64, error) {
	return nil, errNumerical
}

// shortBridger returns one value too few.
type shortBridger struct{}

func (shortBridger) Bridge(x0, _, _, _ float64, times []float64) ([]float64, error) {
	return make([]float64, len(times)-1), nil
}

// mustPath builds a path with times 0..n-1 and values 10*k.
func mustPath(t *testing.T, n int) *path.Path {
	t.Helper()
	times := make([]float64, n)
	values := make([]float64, n)
	for k := 0; k < n; k++ {
		times[k] = float64(k)
		values[k] = 10 * float64(k)
	}
	p, err := path.New(times, values)
	require.NoError(t, err)

	return p
}

// mustShifted builds a path with the given times and values.
func mustShifted(t *testing.T, times, values []float64) *path.Path {
	t.Helper()
	p, err := path.New(times, values)
	require.NoError(t, err)

	return p
}
