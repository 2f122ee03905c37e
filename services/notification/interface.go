package notification

import (
	"context"

	"bookit/models"
)

// Notifier queues customer-facing notifications for background delivery.
type Notifier interface {
	EnqueueBookingConfirmation(ctx context.Context, payload models.BookingEmailPayload) error
}

// Mailer dispatches a single booking confirmation email.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, payload models.BookingEmailPayload) error
}
