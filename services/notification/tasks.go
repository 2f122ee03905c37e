package notification

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"bookit/models"
)

const TypeBookingConfirmation = "email:booking_confirmation"

// NewBookingConfirmationTask builds the asynq task carrying a confirmation
// email payload.
func NewBookingConfirmationTask(payload models.BookingEmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}
