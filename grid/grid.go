// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// MaxSteps caps the number of points a single segment may hold.
const MaxSteps = 1 << 24

// Steps returns the number of points a segment over [t0, t1] is discretised
// into for the given step hint and lower bound.
//
//	steps = max(minSteps, ceil((t1-t0)/dt)+1) + 1
//
// Inputs are assumed valid (see Build for validation). A ratio above MaxSteps
// saturates at MaxSteps.
func Steps(t0, t1, dt float64, minSteps int) int {
	ratio := math.Ceil((t1 - t0) / dt)
	if !(ratio <= MaxSteps) {
		ratio = MaxSteps
	}
	steps := int(ratio) + 1
	if steps < minSteps {
		steps = minSteps
	}

	return steps + 1
}

// Build returns a strictly increasing grid from t0 to t1 with exact endpoints.
//
// The step hint dt is only a hint: the effective spacing is re-derived as
// (t1-t0)/(steps-1) so that the last point lands on t1, and the last point is
// then forced to t1 to remove accumulated rounding drift.
//
// Errors:
//   - ErrBadInterval if t1 <= t0 or either end is non-finite.
//   - ErrBadStep if dt <= 0, non-finite, or (t1-t0)/dt exceeds MaxSteps.
//   - ErrBadMinSteps if minSteps < 1 or above MaxSteps.
//   - ErrStepUnderflow if the effective step cannot advance past t0.
//
// Complexity: O(steps).
func Build(t0, t1, dt float64, minSteps int) ([]float64, error) {
	if math.IsNaN(t0) || math.IsInf(t0, 0) {
		return nil, fmt.Errorf("Build(t0=%v): %w", t0, ErrBadInterval)
	}
	out, _, err := Extend([]float64{t0}, t1, dt, minSteps)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Extend appends the segment (last(dst), t1] to dst and returns the grown
// slice together with the effective step used for the segment.
//
// The start point already present in dst is shared, not duplicated. The
// returned step is what a caller that walks consecutive break points feeds
// back in as the hint for the next segment.
//
// Errors: ErrEmptyGrid for an empty dst, otherwise as Build.
//
// Complexity: O(steps) amortised.
func Extend(dst []float64, t1, dt float64, minSteps int) ([]float64, float64, error) {
	if len(dst) == 0 {
		return dst, dt, ErrEmptyGrid
	}
	t0 := dst[len(dst)-1]
	if math.IsNaN(t1) || math.IsInf(t1, 0) || !(t1 > t0) {
		return dst, dt, fmt.Errorf("Extend(%v, %v): %w", t0, t1, ErrBadInterval)
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return dst, dt, fmt.Errorf("Extend(dt=%v): %w", dt, ErrBadStep)
	}
	if (t1-t0)/dt > MaxSteps {
		return dst, dt, fmt.Errorf("Extend(dt=%v over %v): %w", dt, t1-t0, ErrBadStep)
	}
	if minSteps < 1 || minSteps > MaxSteps {
		return dst, dt, fmt.Errorf("Extend(minSteps=%d): %w", minSteps, ErrBadMinSteps)
	}

	steps := Steps(t0, t1, dt, minSteps)
	step := (t1 - t0) / float64(steps-1)

	// steps-1 new points after the shared start.
	base := len(dst) - 1
	dst = append(dst, make([]float64, steps-1)...)
	for k := base + 1; k < len(dst); k++ {
		dst[k] = dst[k-1] + step
	}
	dst[len(dst)-1] = t1
	for k := base + 1; k < len(dst); k++ {
		if !(dst[k] > dst[k-1]) {
			return dst[:base+1], dt, fmt.Errorf("Extend(%v, %v, step=%v): %w", t0, t1, step, ErrStepUnderflow)
		}
	}

	return dst, step, nil
}
