// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookit/models"
)

// SumConfirmedByTime aggregates confirmed booked units per time label for an
// experience, across all dates. Feeds the availability recomputation on the
// detail read.
func (r *mongoBookingRepo) SumConfirmedByTime(ctx context.Context, experienceID string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"experienceId": experienceID,
			"status":       models.BookingStatusConfirmed,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$time",
			"units": bson.M{"$sum": "$quantity"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booked units: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Time  string `bson:"_id"`
		Units int    `bson:"units"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(rows))
	for _, row := range rows {
		booked[row.Time] = row.Units
	}
	return booked, nil
}
