// File: database/repository/experience/crud.go
package experienceRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookit/models"
)

func (r *mongoExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exp models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *mongoExperienceRepo) ListActive(ctx context.Context) ([]models.ExperienceSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"times": 0, "about": 0, "dates": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.ExperienceSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *mongoExperienceRepo) InsertMany(ctx context.Context, experiences []models.Experience) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(experiences))
	for i, exp := range experiences {
		if exp.ID == "" {
			exp.ID = uuid.New().String()
		}
		if exp.CreatedAt.IsZero() {
			exp.CreatedAt = now
		}
		exp.UpdatedAt = now
		docs[i] = exp
	}

	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoExperienceRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
