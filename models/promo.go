package models

import "time"

// Promo discount types.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCode is a discount rule keyed by a code string.
type PromoCode struct {
	Code          string     `bson:"code" json:"code"`
	DiscountType  string     `bson:"discountType" json:"discountType"` // "percentage" or "fixed"
	DiscountValue float64    `bson:"discountValue" json:"discountValue"`
	MinPurchase   float64    `bson:"minPurchase" json:"minPurchase"`
	MaxDiscount   *float64   `bson:"maxDiscount,omitempty" json:"maxDiscount,omitempty"` // percentage type only
	UsageLimit    *int       `bson:"usageLimit" json:"usageLimit"`                       // nil means unlimited
	UsageCount    int        `bson:"usageCount" json:"usageCount"`
	IsActive      bool       `bson:"isActive" json:"isActive"`
	ValidUntil    *time.Time `bson:"validUntil,omitempty" json:"validUntil,omitempty"`
}

// PromoResult is the payload returned for a successfully applied code.
type PromoResult struct {
	Code          string  `json:"code"`
	Discount      float64 `json:"discount"` // rounded to the nearest currency unit
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
}
