package checkin

import "errors"

var (
	// ErrFlightNotFound is returned when a flight number is not registered.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrNoSeatAvailable is returned when neither the preferred seat nor any
	// nearby candidate can be claimed. It is a terminal outcome; retrying
	// cannot free a seat.
	ErrNoSeatAvailable = errors.New("no seat available")
)
