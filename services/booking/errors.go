package booking

import (
	"errors"
	"fmt"
)

// ErrExperienceNotFound signals the booking references an unknown experience.
var ErrExperienceNotFound = errors.New("experience not found")

// ErrBookingNotFound signals no booking exists for a reference ID.
var ErrBookingNotFound = errors.New("booking not found")

// ValidationError reports a malformed or incomplete booking payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CapacityError reports an insufficient-capacity rejection along with the
// remaining availability for the requested slot.
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("not enough slots available (%d remaining)", e.Available)
}
