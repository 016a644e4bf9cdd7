// Package measure provides the angular (Fisher) transform of allele
// frequencies and a reference Wright-Fisher bridge proposer.
//
// The transform v = arccos(1 − 2x) maps a frequency x ∈ [0, 1] onto
// v ∈ [0, π], where the Wright-Fisher diffusion has unit diffusion
// coefficient. Its inverse is x = (1 − cos v)/2.
//
// WrightFisher implements path.Bridger with the modified diffusion bridge
// (Durham–Gallant) on the angular scale, reflected at 0 and π. When a
// population-size history is attached, the local variance is scaled by the
// inverse relative size 1/ν(t).
//
// Determinism: every proposer owns a seeded *rand.Rand (seed 0 selects a
// fixed default). math/rand.Rand is not goroutine-safe, so neither is a
// WrightFisher.
package measure
