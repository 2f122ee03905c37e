// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"bookit/database"
	"bookit/models"
)

// ErrDuplicateRefID is returned when an insert collides with an existing
// reference ID.
var ErrDuplicateRefID = errors.New("booking refId already exists")

// ErrCapacityExceeded is returned when a slot reservation would push booked
// units past the slot capacity.
var ErrCapacityExceeded = errors.New("slot capacity exceeded")

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByRefID(ctx context.Context, refID string) (*models.Booking, error)
	SumConfirmedByTime(ctx context.Context, experienceID string) (map[string]int, error)
	ReserveSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error
	ReleaseSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units int) error
	SlotUsage(ctx context.Context, experienceID, date, timeLabel string) (int, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll      *mongo.Collection
	usageColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll:      db.Collection("bookings"),
		usageColl: db.Collection("slot_usage"),
	}
}
