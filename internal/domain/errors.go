package domain

import "errors"

var (
	// Returned when a request would create an impossible simulation setup.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Returned when resolving or optimizing for an event that was never injected.
	ErrUnknownEventID = errors.New("unknown event id")

	// Returned for locations outside the grid or on the depot.
	ErrInvalidPosition = errors.New("invalid position")
)
