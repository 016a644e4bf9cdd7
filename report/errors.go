// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrDimensionMismatch indicates times and values of different lengths.
	ErrDimensionMismatch = errors.New("report: times and values differ in length")

	// ErrUnknownFormat indicates an unsupported dump format.
	ErrUnknownFormat = errors.New("report: unknown format")
)
