package purchase

import "errors"

var (
	// ErrInvalidInput indicates a caller contract violation: negative
	// amounts or a commission percentage outside [0,100].
	ErrInvalidInput = errors.New("invalid purchase input")

	// ErrZeroPropertyPrice indicates the mortgage percentage cannot be
	// derived because the property price is zero.
	ErrZeroPropertyPrice = errors.New("property price must be greater than zero")
)
