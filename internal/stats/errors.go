package stats

import "errors"

var (
	// ErrNonFinite is returned when a sample contains NaN or an infinity.
	ErrNonFinite = errors.New("sample contains a non-finite value")

	// ErrInvalidNumber is returned when a list item cannot be parsed as a number.
	ErrInvalidNumber = errors.New("invalid number")
)
