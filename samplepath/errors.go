// SPDX-License-Identifier: MIT

package samplepath

import "errors"

var (
	// ErrTooFewObservations indicates fewer than two observations.
	ErrTooFewObservations = errors.New("samplepath: need at least two observations")

	// ErrDegenerateInterval indicates two observations at the same time.
	ErrDegenerateInterval = errors.New("samplepath: observations share a time")

	// ErrBreakTimes indicates a break-time list that does not start and end on
	// the requested bounds or is not strictly increasing.
	ErrBreakTimes = errors.New("samplepath: malformed break times")

	// ErrUnalignedObservation indicates an observation at or after the allele
	// age whose time is not a grid point.
	ErrUnalignedObservation = errors.New("samplepath: observation time not on grid")

	// ErrBadSnapshot indicates a snapshot whose parts disagree.
	ErrBadSnapshot = errors.New("samplepath: inconsistent snapshot")
)
