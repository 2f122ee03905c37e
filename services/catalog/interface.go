package catalog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	bookingRepo "bookit/database/repository/booking"
	experienceRepo "bookit/database/repository/experience"
	"bookit/models"
)

// CatalogService serves the storefront and product-page reads.
type CatalogService interface {
	ListExperiences(ctx context.Context) ([]models.ExperienceSummary, error)
	GetExperience(ctx context.Context, id string) (*models.ExperienceDetail, error)
}

// DefaultCatalogService is the production implementation. Cache is optional;
// when nil every list read goes straight to Mongo. Availability on the detail
// read is always recomputed, never cached.
type DefaultCatalogService struct {
	ExperienceRepo experienceRepo.ExperienceRepository
	BookingRepo    bookingRepo.BookingRepository
	Cache          *redis.Client
	CacheTTL       time.Duration
}
