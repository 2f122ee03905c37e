// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings and slot_usage
// collections.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookingIndexes := []mongo.IndexModel{
		// Reference IDs are globally unique; inserts retry on collision.
		{
			Keys:    bson.D{{Key: "refId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_ref_id"),
		},
		// Primary query pattern for capacity accounting and detail reads.
		{
			Keys:    bson.D{{Key: "experienceId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("experience_date_time_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	// The unique slot key is what makes the bounded upsert in
	// ReserveSlotCapacity safe under concurrent reservations.
	usageIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "experienceId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_slot_key"),
	}
	if _, err := r.usageColl.Indexes().CreateOne(ctx, usageIndex); err != nil {
		return fmt.Errorf("failed to create slot_usage index: %w", err)
	}
	return nil
}
