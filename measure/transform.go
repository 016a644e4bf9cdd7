package measure

import "math"

// Fisher maps a frequency x ∈ [0, 1] to the angular scale: arccos(1 − 2x).
// Values outside [0, 1] yield NaN.
func Fisher(x float64) float64 {
	return math.Acos(1 - 2*x)
}

// Frequency maps an angular value back to a frequency: (1 − cos v)/2.
func Frequency(v float64) float64 {
	return (1 - math.Cos(v)) / 2
}

// reflect folds v into [0, π] by reflecting at both boundaries.
func reflect(v float64) float64 {
	v = math.Mod(v, 2*math.Pi)
	if v < 0 {
		v += 2 * math.Pi
	}
	if v > math.Pi {
		v = 2*math.Pi - v
	}

	return v
}
