// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReserveSlotCapacity atomically increments the booked counter for a slot,
// guarded by an upper bound. The filter only matches while booked <= capacity
// - units; when the counter document does not exist yet the upsert creates it
// with the requested units. A concurrent upsert loses on the unique index and
// is retried once against the now-existing document.
func (r *mongoBookingRepo) ReserveSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if units < 1 || units > capacity {
		return ErrCapacityExceeded
	}

	filter := bson.M{
		"experienceId": experienceID,
		"date":         date,
		"time":         timeLabel,
		"booked":       bson.M{"$lte": capacity - units},
	}
	update := bson.M{"$inc": bson.M{"booked": units}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	for attempt := 0; attempt < 2; attempt++ {
		err := r.usageColl.FindOneAndUpdate(ctx, filter, update, opts).Err()
		if err == nil {
			return nil
		}
		if mongo.IsDuplicateKeyError(err) {
			// A usage document exists but did not match the bound, or a
			// concurrent upsert beat us to the insert. Retry once; a second
			// duplicate-key failure means the slot is full.
			continue
		}
		return fmt.Errorf("failed to reserve slot capacity: %w", err)
	}
	return ErrCapacityExceeded
}

// ReleaseSlotCapacity returns previously reserved units, used when a booking
// insert fails after its reservation succeeded.
func (r *mongoBookingRepo) ReleaseSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"experienceId": experienceID,
		"date":         date,
		"time":         timeLabel,
		"booked":       bson.M{"$gte": units},
	}
	update := bson.M{"$inc": bson.M{"booked": -units}}

	res, err := r.usageColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release slot capacity: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("release failed; usage counter missing or below %d units", units)
	}
	return nil
}

// SlotUsage reports booked units for a single slot. A missing counter
// document means nothing has been booked yet.
func (r *mongoBookingRepo) SlotUsage(ctx context.Context, experienceID, date, timeLabel string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"experienceId": experienceID,
		"date":         date,
		"time":         timeLabel,
	}
	var usage struct {
		Booked int `bson:"booked"`
	}
	err := r.usageColl.FindOne(ctx, filter).Decode(&usage)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read slot usage: %w", err)
	}
	return usage.Booked, nil
}
