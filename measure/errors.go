// SPDX-License-Identifier: MIT

package measure

import "errors"

var (
	// ErrBadGrid indicates a grid with fewer than two points, a grid that is
	// not strictly increasing, or ends that differ from (t0, t1).
	ErrBadGrid = errors.New("measure: invalid bridge grid")

	// ErrBadEndpoint indicates an end value outside [0, π] or NaN.
	ErrBadEndpoint = errors.New("measure: bridge endpoint outside [0, pi]")

	// ErrBridgeFailed indicates the simulation produced a non-finite value.
	ErrBridgeFailed = errors.New("measure: bridge simulation failed")
)
