package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "bookit/database/repository/booking"
	"bookit/models"
	"bookit/utils"
)

// CreateBooking validates the payload, reserves slot capacity atomically,
// persists the booking under a fresh reference ID, and enqueues the
// confirmation email. The client-submitted total is stored verbatim; the
// server does not recompute it from price, taxes, quantity, and discount.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	experience, err := s.ExperienceRepo.GetByID(ctx, input.ExperienceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to look up experience: %w", err)
	}

	err = s.BookingRepo.ReserveSlotCapacity(ctx, input.ExperienceID, input.Date, input.Time, input.Quantity, models.SlotCapacity)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrCapacityExceeded) {
			booked, usageErr := s.BookingRepo.SlotUsage(ctx, input.ExperienceID, input.Date, input.Time)
			if usageErr != nil {
				logger.Warn("Failed to read slot usage for capacity hint", zap.Error(usageErr))
			}
			available := models.SlotCapacity - booked
			if available < 0 {
				available = 0
			}
			return nil, &CapacityError{Available: available}
		}
		return nil, fmt.Errorf("failed to reserve slot capacity: %w", err)
	}

	title := input.ExperienceTitle
	if title == "" {
		title = experience.Title
	}

	record := &models.Booking{
		ID:              uuid.New().String(),
		ExperienceID:    input.ExperienceID,
		ExperienceTitle: title,
		FullName:        input.FullName,
		Email:           input.Email,
		Date:            input.Date,
		Time:            input.Time,
		Location:        input.Location,
		Quantity:        input.Quantity,
		Price:           input.Price,
		Taxes:           input.Taxes,
		Total:           input.Total,
		PromoCode:       input.PromoCode,
		Discount:        input.Discount,
		Status:          models.BookingStatusConfirmed,
		AgreedToTerms:   input.AgreedToTerms,
	}

	if err := s.insertWithFreshRefID(ctx, record); err != nil {
		if releaseErr := s.BookingRepo.ReleaseSlotCapacity(ctx, input.ExperienceID, input.Date, input.Time, input.Quantity); releaseErr != nil {
			logger.Error("Failed to release reserved capacity after insert failure", zap.Error(releaseErr))
		}
		return nil, err
	}

	logger.Info("Booking confirmed",
		zap.String("refId", record.RefID),
		zap.String("experienceId", record.ExperienceID),
		zap.Int("quantity", record.Quantity),
	)

	s.enqueueConfirmation(ctx, record)

	return &models.BookingConfirmation{
		RefID:           record.RefID,
		ExperienceTitle: record.ExperienceTitle,
		Date:            record.Date,
		Time:            record.Time,
		Quantity:        record.Quantity,
		Total:           record.Total,
		Email:           record.Email,
	}, nil
}

// insertWithFreshRefID draws reference IDs until the insert lands without
// hitting the unique refId index.
func (s *DefaultBookingService) insertWithFreshRefID(ctx context.Context, record *models.Booking) error {
	for attempt := 0; attempt < maxRefIDAttempts; attempt++ {
		record.RefID = newRefID()
		err := s.BookingRepo.Insert(ctx, record)
		if err == nil {
			return nil
		}
		if errors.Is(err, bookingRepo.ErrDuplicateRefID) {
			continue
		}
		return fmt.Errorf("failed to persist booking: %w", err)
	}
	return fmt.Errorf("failed to generate a unique reference ID after %d attempts", maxRefIDAttempts)
}

func (s *DefaultBookingService) enqueueConfirmation(ctx context.Context, record *models.Booking) {
	if s.Notifier == nil {
		return
	}
	payload := models.BookingEmailPayload{
		RefID:           record.RefID,
		Email:           record.Email,
		FullName:        record.FullName,
		ExperienceTitle: record.ExperienceTitle,
		Date:            record.Date,
		Time:            record.Time,
		Quantity:        record.Quantity,
		Total:           record.Total,
	}
	if err := s.Notifier.EnqueueBookingConfirmation(ctx, payload); err != nil {
		// The booking is already confirmed; a lost email is not a failure.
		utils.GetLogger().Warn("Failed to enqueue confirmation email",
			zap.String("refId", record.RefID), zap.Error(err))
	}
}

// GetBookingByRefID returns a stored booking with its experience summary
// populated.
func (s *DefaultBookingService) GetBookingByRefID(ctx context.Context, refID string) (*models.BookingDetail, error) {
	record, err := s.BookingRepo.GetByRefID(ctx, refID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	detail := &models.BookingDetail{Booking: *record}
	if experience, err := s.ExperienceRepo.GetByID(ctx, record.ExperienceID); err == nil {
		detail.Experience = &models.ExperienceRef{
			ID:       experience.ID,
			Title:    experience.Title,
			Location: experience.Location,
			Image:    experience.Image,
		}
	}
	return detail, nil
}
