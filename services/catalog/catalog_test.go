package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"bookit/models"
)

// --- Mock ExperienceRepository ---

type mockExperienceRepo struct {
	getFn  func(ctx context.Context, id string) (*models.Experience, error)
	listFn func(ctx context.Context) ([]models.ExperienceSummary, error)
}

func (m *mockExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	return m.getFn(ctx, id)
}

func (m *mockExperienceRepo) ListActive(ctx context.Context) ([]models.ExperienceSummary, error) {
	return m.listFn(ctx)
}

func (m *mockExperienceRepo) InsertMany(ctx context.Context, experiences []models.Experience) error {
	return nil
}
func (m *mockExperienceRepo) DeleteAll(ctx context.Context) error { return nil }
func (m *mockExperienceRepo) EnsureIndexes() error                { return nil }

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	sumFn func(ctx context.Context, experienceID string) (map[string]int, error)
}

func (m *mockBookingRepo) SumConfirmedByTime(ctx context.Context, experienceID string) (map[string]int, error) {
	return m.sumFn(ctx, experienceID)
}

func (m *mockBookingRepo) Insert(ctx context.Context, booking *models.Booking) error { return nil }
func (m *mockBookingRepo) GetByRefID(ctx context.Context, refID string) (*models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) ReserveSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error {
	return nil
}
func (m *mockBookingRepo) ReleaseSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units int) error {
	return nil
}
func (m *mockBookingRepo) SlotUsage(ctx context.Context, experienceID, date, timeLabel string) (int, error) {
	return 0, nil
}
func (m *mockBookingRepo) EnsureIndexes() error { return nil }

// --- Tests ---

func coffeeTrail() *models.Experience {
	return &models.Experience{
		ID:       "exp-3",
		Title:    "Coffee Trail",
		Location: "Coorg",
		Price:    1299,
		Taxes:    70,
		IsActive: true,
		Dates:    []string{"Oct 22", "Oct 23"},
		Times: []models.TimeSlot{
			{Time: "08:00 am", Available: 8},
			{Time: "10:00 am", Available: 5},
			{Time: "02:00 pm", Available: 4},
		},
	}
}

func TestGetExperience_RecomputesAvailability(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return coffeeTrail(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		sumFn: func(ctx context.Context, experienceID string) (map[string]int, error) {
			return map[string]int{
				"08:00 am": 3,
				"10:00 am": 10,
			}, nil
		},
	}
	svc := &DefaultCatalogService{ExperienceRepo: expRepo, BookingRepo: bkRepo}

	detail, err := svc.GetExperience(context.Background(), "exp-3")

	assert.NoError(t, err)
	assert.Len(t, detail.Times, 3)

	// The seeded available counts are ignored; capacity is fixed at 10.
	assert.Equal(t, 7, detail.Times[0].Available)
	assert.Empty(t, detail.Times[0].Status)

	assert.Equal(t, 0, detail.Times[1].Available)
	assert.Equal(t, "SOLD OUT", detail.Times[1].Status)

	assert.Equal(t, 10, detail.Times[2].Available)
	assert.Empty(t, detail.Times[2].Status)
}

func TestGetExperience_OverbookedSlotClampsToZero(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return coffeeTrail(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		sumFn: func(ctx context.Context, experienceID string) (map[string]int, error) {
			return map[string]int{"08:00 am": 14}, nil
		},
	}
	svc := &DefaultCatalogService{ExperienceRepo: expRepo, BookingRepo: bkRepo}

	detail, err := svc.GetExperience(context.Background(), "exp-3")

	assert.NoError(t, err)
	assert.Equal(t, 0, detail.Times[0].Available)
	assert.Equal(t, "SOLD OUT", detail.Times[0].Status)
}

func TestGetExperience_NotFound(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := &DefaultCatalogService{ExperienceRepo: expRepo, BookingRepo: &mockBookingRepo{}}

	_, err := svc.GetExperience(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestListExperiences_PassesThroughWithoutCache(t *testing.T) {
	expRepo := &mockExperienceRepo{
		listFn: func(ctx context.Context) ([]models.ExperienceSummary, error) {
			return []models.ExperienceSummary{
				{ID: "exp-1", Title: "Kayaking"},
				{ID: "exp-2", Title: "Nandi Hills Sunrise"},
			}, nil
		},
	}
	svc := &DefaultCatalogService{ExperienceRepo: expRepo, BookingRepo: &mockBookingRepo{}}

	summaries, err := svc.ListExperiences(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "Kayaking", summaries[0].Title)
}
