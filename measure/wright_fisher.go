// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/wfpath/path"
)

// Proposer is what a sample path needs from its measure: bridges on a grid
// and the map from frequencies into the latent (angular) space.
type Proposer interface {
	path.Bridger
	ToLatent(x float64) float64
}

// WrightFisher proposes Wright-Fisher diffusion bridges on the angular scale.
type WrightFisher struct {
	rng     *rand.Rand
	sigma   float64
	history SizeHistory
}

var _ Proposer = (*WrightFisher)(nil)

// New returns a proposer with DefaultSigma, the default seed and no history.
func New(opts ...Option) *WrightFisher {
	w := &WrightFisher{sigma: DefaultSigma}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rngFromSeed(0)
	}

	return w
}

// ToLatent implements Proposer with the Fisher transform.
func (w *WrightFisher) ToLatent(x float64) float64 { return Fisher(x) }

// Bridge implements path.Bridger.
//
// For consecutive grid points t[k] < t[k+1] with h = t[k+1] − t[k]:
//
//	mean = v[k] + (xt − v[k])·h/(t1 − t[k])
//	var  = σ²/ν(t[k]) · h·(t1 − t[k+1])/(t1 − t[k])
//	v[k+1] = reflect(mean + sqrt(var)·Z)
//
// v[0] = x0 and v[n−1] = xt exactly.
func (w *WrightFisher) Bridge(x0, xt, t0, t1 float64, times []float64) ([]float64, error) {
	n := len(times)
	if n < 2 || times[0] != t0 || times[n-1] != t1 {
		return nil, fmt.Errorf("Bridge on %d points over [%v, %v]: %w", n, t0, t1, ErrBadGrid)
	}
	if !inRange(x0) || !inRange(xt) {
		return nil, fmt.Errorf("Bridge(%v→%v): %w", x0, xt, ErrBadEndpoint)
	}

	out := make([]float64, n)
	out[0] = x0
	for k := 0; k < n-2; k++ {
		h := times[k+1] - times[k]
		rem := t1 - times[k]
		if !(h > 0) || !(t1 > times[k+1]) {
			return nil, fmt.Errorf("Bridge: grid not increasing at %d: %w", k+1, ErrBadGrid)
		}
		mean := out[k] + (xt-out[k])*h/rem
		variance := w.variance(times[k]) * h * (t1 - times[k+1]) / rem
		next := reflect(mean + math.Sqrt(variance)*w.rng.NormFloat64())
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return nil, fmt.Errorf("Bridge: step %d at t=%v: %w", k+1, times[k+1], ErrBridgeFailed)
		}
		out[k+1] = next
	}
	out[n-1] = xt

	return out, nil
}

// variance returns σ²/ν(t), or σ² without a history.
func (w *WrightFisher) variance(t float64) float64 {
	v := w.sigma * w.sigma
	if w.history != nil {
		v /= w.history.Size(t)
	}

	return v
}

func inRange(v float64) bool {
	return v >= 0 && v <= math.Pi
}
