// SPDX-License-Identifier: MIT

package sample

import "errors"

var (
	// ErrInvalidRecord wraps every per-line failure; the message carries the line number.
	ErrInvalidRecord = errors.New("sample: invalid record")

	// ErrCountRange indicates count < 0, count > sampleSize or sampleSize < 1.
	ErrCountRange = errors.New("sample: count outside [0, sampleSize] or empty sample")

	// ErrTimeRange indicates lowTime > highTime.
	ErrTimeRange = errors.New("sample: lowTime after highTime")

	// ErrMalformed indicates a wrong field count or an unparsable number.
	ErrMalformed = errors.New("sample: malformed fields")

	// ErrNoObservations indicates input without any record.
	ErrNoObservations = errors.New("sample: no observations")

	// ErrInvalidScale indicates a non-positive generation time or N0.
	ErrInvalidScale = errors.New("sample: invalid time scale")
)
