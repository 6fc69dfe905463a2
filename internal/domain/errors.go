package domain

import "errors"

// Engine error taxonomy. All four are terminal for a simulation run:
// nothing is retried internally and no partial result is produced.
var (
	// ErrTimeFormat reports a clock string that does not match "HH:MM".
	ErrTimeFormat = errors.New("invalid time format")

	// ErrValidation reports an out-of-range or malformed input record.
	ErrValidation = errors.New("validation failed")

	// ErrNoDriversAvailable reports an empty (possibly filtered) driver set.
	ErrNoDriversAvailable = errors.New("no drivers available")

	// ErrNoOrdersAvailable reports an empty (possibly filtered) order set.
	ErrNoOrdersAvailable = errors.New("no orders available")
)
