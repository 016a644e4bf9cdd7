package popsize

import "errors"

var (
	// ErrInvalidEpoch indicates a non-positive or non-finite size, or epoch
	// starts that are not strictly increasing.
	ErrInvalidEpoch = errors.New("popsize: invalid epoch")

	// ErrNoEpochs indicates an empty history.
	ErrNoEpochs = errors.New("popsize: no epochs")

	// ErrBadInterval indicates t1 ≤ t0 or a non-finite bound.
	ErrBadInterval = errors.New("popsize: invalid interval")

	// ErrMalformed indicates an unparsable line.
	ErrMalformed = errors.New("popsize: malformed line")
)
