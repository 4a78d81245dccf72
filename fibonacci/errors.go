package fibonacci

import "errors"

var (
	// ErrNegativeInput is returned for positions below zero.
	ErrNegativeInput = errors.New("negative position")

	// ErrInvalidInput is returned when a position is not a whole number:
	// unparseable text, NaN, infinities and fractional values.
	ErrInvalidInput = errors.New("invalid position")

	// ErrOverflow is returned when F(n) does not fit in a uint64.
	ErrOverflow = errors.New("fibonacci value overflows uint64")
)
