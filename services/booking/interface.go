package booking

import (
	"context"

	bookingRepo "bookit/database/repository/booking"
	experienceRepo "bookit/database/repository/experience"
	"bookit/models"
	"bookit/services/notification"
)

// BookingService creates bookings and looks them up by reference ID.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingConfirmation, error)
	GetBookingByRefID(ctx context.Context, refID string) (*models.BookingDetail, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	ExperienceRepo experienceRepo.ExperienceRepository
	BookingRepo    bookingRepo.BookingRepository
	Notifier       notification.Notifier
}
