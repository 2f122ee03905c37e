// File: database/repository/promo/interface.go
package promoRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"bookit/database"
	"bookit/models"
)

// ErrUsageLimitReached is returned when a conditional usage increment finds
// the code already at its limit.
var ErrUsageLimitReached = errors.New("promo code usage limit reached")

type PromoRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*models.PromoCode, error)
	IncrementUsage(ctx context.Context, code string) error
	InsertMany(ctx context.Context, codes []models.PromoCode) error
	DeleteAll(ctx context.Context) error
	EnsureIndexes() error
}

type mongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo constructs a new MongoDB PromoRepository.
func NewMongoPromoRepo() PromoRepository {
	return &mongoPromoRepo{
		coll: database.DB().Collection("promocodes"),
	}
}
