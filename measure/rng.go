package measure

import "math/rand"

// defaultRNGSeed replaces seed 0 so the zero Option set is reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic source for one proposer.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
