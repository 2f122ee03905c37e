package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bookit/models"
	"bookit/utils"
)

// ListExperiences returns active experiences with schedule detail stripped,
// newest first. Summaries may be served from a short-TTL cache.
func (s *DefaultCatalogService) ListExperiences(ctx context.Context) ([]models.ExperienceSummary, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	summaries, err := s.ExperienceRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}

	s.storeList(ctx, summaries)
	return summaries, nil
}

func (s *DefaultCatalogService) cachedList(ctx context.Context) ([]models.ExperienceSummary, bool) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, utils.CatalogCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var summaries []models.ExperienceSummary
	if err := json.Unmarshal([]byte(raw), &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (s *DefaultCatalogService) storeList(ctx context.Context, summaries []models.ExperienceSummary) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(summaries)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.CatalogCacheKey, raw, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache experience list", zap.Error(err))
	}
}

// GetExperience returns the experience document with each time slot's
// availability recomputed from confirmed bookings. Slots at zero availability
// are marked SOLD OUT.
func (s *DefaultCatalogService) GetExperience(ctx context.Context, id string) (*models.ExperienceDetail, error) {
	experience, err := s.ExperienceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to look up experience: %w", err)
	}

	booked, err := s.BookingRepo.SumConfirmedByTime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to compute slot availability: %w", err)
	}

	times := make([]models.TimeSlotView, len(experience.Times))
	for i, slot := range experience.Times {
		available := models.SlotCapacity - booked[slot.Time]
		if available < 0 {
			available = 0
		}
		view := models.TimeSlotView{
			Time:      slot.Time,
			Available: available,
		}
		if available == 0 {
			view.Status = "SOLD OUT"
		}
		times[i] = view
	}

	return &models.ExperienceDetail{
		ID:          experience.ID,
		Title:       experience.Title,
		Location:    experience.Location,
		Image:       experience.Image,
		Price:       experience.Price,
		Description: experience.Description,
		Dates:       experience.Dates,
		Times:       times,
		About:       experience.About,
		Taxes:       experience.Taxes,
		IsActive:    experience.IsActive,
		CreatedAt:   experience.CreatedAt,
		UpdatedAt:   experience.UpdatedAt,
	}, nil
}
