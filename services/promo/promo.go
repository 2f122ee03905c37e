package promo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	promoRepo "bookit/database/repository/promo"
	"bookit/models"
	"bookit/utils"
)

// Validate applies a promo code to a subtotal. On success the code's usage
// counter has already been incremented; usage accounting is optimistic and is
// not rolled back if the checkout is later abandoned.
func (s *DefaultPromoService) Validate(ctx context.Context, code string, subtotal float64) (*models.PromoResult, error) {
	logger := utils.GetLogger()

	normalized := strings.ToUpper(strings.TrimSpace(code))

	promo, err := s.Repo.GetActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}

	if promo.ValidUntil != nil && time.Now().After(*promo.ValidUntil) {
		return nil, &RejectionError{Message: "Promo code has expired"}
	}
	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return nil, &RejectionError{Message: "Promo code usage limit reached"}
	}
	if subtotal < promo.MinPurchase {
		return nil, &RejectionError{
			Message: fmt.Sprintf("Minimum purchase of ₹%.0f required", promo.MinPurchase),
		}
	}

	var discount float64
	if promo.DiscountType == models.DiscountTypePercentage {
		discount = subtotal * promo.DiscountValue / 100
		if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
			discount = *promo.MaxDiscount
		}
	} else {
		discount = promo.DiscountValue
	}
	discount = math.Round(discount)

	if err := s.Repo.IncrementUsage(ctx, normalized); err != nil {
		if errors.Is(err, promoRepo.ErrUsageLimitReached) {
			// A concurrent redemption consumed the last use between the read
			// and the increment.
			return nil, &RejectionError{Message: "Promo code usage limit reached"}
		}
		return nil, fmt.Errorf("failed to record promo usage: %w", err)
	}

	logger.Info("Promo code applied",
		zap.String("code", promo.Code),
		zap.Float64("subtotal", subtotal),
		zap.Float64("discount", discount),
	)

	return &models.PromoResult{
		Code:          promo.Code,
		Discount:      discount,
		DiscountType:  promo.DiscountType,
		DiscountValue: promo.DiscountValue,
	}, nil
}
