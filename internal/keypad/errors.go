package keypad

import "errors"

var (
	// ErrInvalidDirection is returned for a move character outside U, D, L, R
	// or a direction the layout has no transition for.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrUnknownKey is returned when a position is not a key of the layout.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownLayout is returned by Lookup for an unsupported keypad name.
	ErrUnknownLayout = errors.New("unknown keypad")
)
