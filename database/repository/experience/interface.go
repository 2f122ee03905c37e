// File: database/repository/experience/interface.go
package experienceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookit/database"
	"bookit/models"
)

type ExperienceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	ListActive(ctx context.Context) ([]models.ExperienceSummary, error)
	InsertMany(ctx context.Context, experiences []models.Experience) error
	DeleteAll(ctx context.Context) error
	EnsureIndexes() error
}

type mongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo constructs a new MongoDB ExperienceRepository.
func NewMongoExperienceRepo() ExperienceRepository {
	return &mongoExperienceRepo{
		coll: database.DB().Collection("experiences"),
	}
}
