// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates Extend was handed a grid without a start point.
	ErrEmptyGrid = errors.New("grid: grid must contain a start point")

	// ErrBadInterval indicates an empty, inverted or non-finite interval.
	ErrBadInterval = errors.New("grid: interval end must be finite and after its start")

	// ErrBadStep indicates a non-positive or non-finite step hint, or one that
	// would need more than MaxSteps points.
	ErrBadStep = errors.New("grid: step must be finite, > 0 and yield at most MaxSteps points")

	// ErrStepUnderflow indicates the effective step is too small to advance
	// the grid in floating point.
	ErrStepUnderflow = errors.New("grid: step underflows the interval start")

	// ErrBadMinSteps indicates a minimum step count below one.
	ErrBadMinSteps = errors.New("grid: minimum step count must be >= 1")
)
