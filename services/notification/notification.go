package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookit/models"
	"bookit/utils"
)

// AsynqNotifier enqueues notification tasks onto the Redis-backed queue.
type AsynqNotifier struct {
	Client *asynq.Client
}

func NewAsynqNotifier(client *asynq.Client) (*AsynqNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("notifier initialization error: asynq client is nil")
	}
	return &AsynqNotifier{Client: client}, nil
}

func (n *AsynqNotifier) EnqueueBookingConfirmation(ctx context.Context, payload models.BookingEmailPayload) error {
	task, err := NewBookingConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	info, err := n.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	utils.GetLogger().Debug("Confirmation email queued",
		zap.String("taskId", info.ID), zap.String("refId", payload.RefID))
	return nil
}

// LogMailer writes confirmation emails to the log. Stands in for an SMTP or
// provider-backed mailer.
type LogMailer struct{}

func (LogMailer) SendBookingConfirmation(_ context.Context, payload models.BookingEmailPayload) error {
	utils.GetLogger().Info("Booking confirmation email sent",
		zap.String("to", payload.Email),
		zap.String("refId", payload.RefID),
		zap.String("experience", payload.ExperienceTitle),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
		zap.Int("quantity", payload.Quantity),
		zap.Float64("total", payload.Total),
	)
	return nil
}
