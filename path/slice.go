package path

import (
	"fmt"
	"math"
)

// Subpath returns an independent Path holding the HALF-OPEN range [i, j).
// Contrast with TimeSlice/ValueSlice which are closed on both ends.
//
// Complexity: O(j-i).
func (p *Path) Subpath(i, j int) (*Path, error) {
	if i < 0 || j > len(p.pts) || i > j {
		return nil, fmt.Errorf("Subpath(%d, %d) of %d: %w", i, j, len(p.pts), ErrOutOfRange)
	}

	return &Path{pts: append([]Point(nil), p.pts[i:j]...)}, nil
}

// TimeSlice returns the times of the CLOSED range [i, j]: j-i+1 elements.
func (p *Path) TimeSlice(i, j int) ([]float64, error) {
	if err := p.closedRange(i, j); err != nil {
		return nil, fmt.Errorf("TimeSlice: %w", err)
	}
	out := make([]float64, 0, j-i+1)
	for _, pt := range p.pts[i : j+1] {
		out = append(out, pt.Time)
	}

	return out, nil
}

// ValueSlice returns the values of the CLOSED range [i, j]: j-i+1 elements.
func (p *Path) ValueSlice(i, j int) ([]float64, error) {
	if err := p.closedRange(i, j); err != nil {
		return nil, fmt.Errorf("ValueSlice: %w", err)
	}
	out := make([]float64, 0, j-i+1)
	for _, pt := range p.pts[i : j+1] {
		out = append(out, pt.Value)
	}

	return out, nil
}

func (p *Path) closedRange(i, j int) error {
	if i < 0 || j >= len(p.pts) || i > j {
		return fmt.Errorf("[%d, %d] of %d: %w", i, j, len(p.pts), ErrOutOfRange)
	}

	return nil
}

// ReplaceTime swaps the time axis in place, keeping the values.
//
// Errors (p untouched on error):
//   - ErrDimensionMismatch if len(times) != Len().
//   - ErrNotIncreasing if times is not strictly increasing.
//
// Complexity: O(Len).
func (p *Path) ReplaceTime(times []float64) error {
	if len(times) != len(p.pts) {
		return fmt.Errorf("ReplaceTime: %d times for %d points: %w", len(times), len(p.pts), ErrDimensionMismatch)
	}
	for k := 1; k < len(times); k++ {
		if !(times[k-1] < times[k]) {
			return fmt.Errorf("ReplaceTime: at index %d: %w", k, ErrNotIncreasing)
		}
	}
	for k := range p.pts {
		p.pts[k].Time = times[k]
	}

	return nil
}

// Flip reflects every value v → π − v. On the angular scale this maps an
// allele frequency x to 1 − x.
func (p *Path) Flip() {
	for k := range p.pts {
		p.pts[k].Value = math.Pi - p.pts[k].Value
	}
}
