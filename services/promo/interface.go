package promo

import (
	"context"

	promoRepo "bookit/database/repository/promo"
	"bookit/models"
)

// PromoService validates promo codes against a checkout subtotal.
type PromoService interface {
	Validate(ctx context.Context, code string, subtotal float64) (*models.PromoResult, error)
}

// DefaultPromoService is the production implementation.
type DefaultPromoService struct {
	Repo promoRepo.PromoRepository
}
