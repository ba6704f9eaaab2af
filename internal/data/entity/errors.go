package entity

import "errors"

// Error kinds raised by the seat engine. Callers branch with errors.Is;
// the message text around them is informational only.
var (
	// ErrValidation marks malformed input: bad seat labels, coordinates off
	// the grid, aisle-targeted operations, non-positive capacity.
	ErrValidation = errors.New("validation error")

	// ErrBooking marks a semantically invalid state transition: booking an
	// occupied seat, cancelling a free one, promoting into a full flight.
	ErrBooking = errors.New("booking error")
)
