package promo

import "errors"

// ErrInvalidCode signals that no active promo code matches the submitted
// string.
var ErrInvalidCode = errors.New("invalid promo code")

// RejectionError carries the human-readable reason a valid code cannot be
// applied (expired, limit reached, below minimum purchase).
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}
