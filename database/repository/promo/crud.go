// File: database/repository/promo/crud.go
package promoRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bookit/models"
)

func (r *mongoPromoRepo) GetActiveByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var promo models.PromoCode
	filter := bson.M{"code": code, "isActive": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

// IncrementUsage bumps the usage counter with the limit enforced in the
// filter, so concurrent redemptions cannot push the count past the limit.
func (r *mongoPromoRepo) IncrementUsage(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"code":     code,
		"isActive": true,
		"$or": []bson.M{
			{"usageLimit": nil},
			{"$expr": bson.M{"$lt": bson.A{"$usageCount", "$usageLimit"}}},
		},
	}
	update := bson.M{"$inc": bson.M{"usageCount": 1}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment promo usage: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUsageLimitReached
	}
	return nil
}

func (r *mongoPromoRepo) InsertMany(ctx context.Context, codes []models.PromoCode) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(codes))
	for i, code := range codes {
		docs[i] = code
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoPromoRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
