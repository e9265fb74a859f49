package domain

import "errors"

var (
	// ErrMalformedRecord is returned when an input record cannot be converted or fails validation.
	ErrMalformedRecord = errors.New("malformed repository record")
	// ErrZeroTotal is returned when percentages are requested against a zero total.
	ErrZeroTotal = errors.New("cannot compute shares of a zero total")
	// ErrInvalidConfig is returned for configuration values outside their allowed range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
