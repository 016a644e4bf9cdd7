package measure

import (
	"math"
	"math/rand"
)

// DefaultSigma is the diffusion coefficient on the angular scale.
const DefaultSigma = 1.0

// SizeHistory reports the relative population size ν(t) = N(t)/N0.
// *popsize.History implements it.
type SizeHistory interface {
	Size(t float64) float64
}

// Option customises a WrightFisher proposer.
type Option func(*WrightFisher)

// WithSeed seeds the proposer's RNG. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(w *WrightFisher) { w.rng = rngFromSeed(seed) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("measure: WithRand(nil)")
	}

	return func(w *WrightFisher) { w.rng = r }
}

// WithHistory scales the local variance by 1/ν(t). Panics on nil.
func WithHistory(h SizeHistory) Option {
	if h == nil {
		panic("measure: WithHistory(nil)")
	}

	return func(w *WrightFisher) { w.history = h }
}

// WithSigma sets the diffusion coefficient. Panics unless sigma is finite and > 0.
func WithSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		panic("measure: WithSigma(sigma<=0)")
	}

	return func(w *WrightFisher) { w.sigma = sigma }
}
