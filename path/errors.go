// SPDX-License-Identifier: MIT

package path

import "errors"

var (
	// ErrDimensionMismatch indicates paired sequences of different lengths,
	// e.g. times vs values, or a replacement time axis of the wrong size.
	ErrDimensionMismatch = errors.New("path: dimension mismatch")

	// ErrOutOfRange indicates an index outside the current bounds.
	ErrOutOfRange = errors.New("path: index out of range")

	// ErrNotIncreasing indicates a time axis that is not strictly increasing.
	ErrNotIncreasing = errors.New("path: time axis must be strictly increasing")

	// ErrEmptyPath indicates an operation that needs at least one point.
	ErrEmptyPath = errors.New("path: path is empty")

	// ErrNilPath indicates a nil *Path argument.
	ErrNilPath = errors.New("path: nil path")

	// ErrBridgeFailed indicates the Bridger could not produce a trajectory.
	// The proposer's own error is wrapped alongside it.
	ErrBridgeFailed = errors.New("path: bridge construction failed")
)
