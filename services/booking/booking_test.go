package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "bookit/database/repository/booking"
	"bookit/models"
)

// --- Mock ExperienceRepository ---

type mockExperienceRepo struct {
	getFn func(ctx context.Context, id string) (*models.Experience, error)
}

func (m *mockExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	return m.getFn(ctx, id)
}

func (m *mockExperienceRepo) ListActive(ctx context.Context) ([]models.ExperienceSummary, error) {
	return nil, nil
}
func (m *mockExperienceRepo) InsertMany(ctx context.Context, experiences []models.Experience) error {
	return nil
}
func (m *mockExperienceRepo) DeleteAll(ctx context.Context) error { return nil }
func (m *mockExperienceRepo) EnsureIndexes() error                { return nil }

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	insertFn     func(ctx context.Context, booking *models.Booking) error
	reserveFn    func(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error
	releaseFn    func(ctx context.Context, experienceID, date, timeLabel string, units int) error
	usageFn      func(ctx context.Context, experienceID, date, timeLabel string) (int, error)
	getByRefFn   func(ctx context.Context, refID string) (*models.Booking, error)
	insertCalls  int
	releaseCalls int
}

func (m *mockBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	m.insertCalls++
	if m.insertFn != nil {
		return m.insertFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) GetByRefID(ctx context.Context, refID string) (*models.Booking, error) {
	return m.getByRefFn(ctx, refID)
}

func (m *mockBookingRepo) SumConfirmedByTime(ctx context.Context, experienceID string) (map[string]int, error) {
	return nil, nil
}

func (m *mockBookingRepo) ReserveSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error {
	if m.reserveFn != nil {
		return m.reserveFn(ctx, experienceID, date, timeLabel, units, capacity)
	}
	return nil
}

func (m *mockBookingRepo) ReleaseSlotCapacity(ctx context.Context, experienceID, date, timeLabel string, units int) error {
	m.releaseCalls++
	if m.releaseFn != nil {
		return m.releaseFn(ctx, experienceID, date, timeLabel, units)
	}
	return nil
}

func (m *mockBookingRepo) SlotUsage(ctx context.Context, experienceID, date, timeLabel string) (int, error) {
	if m.usageFn != nil {
		return m.usageFn(ctx, experienceID, date, timeLabel)
	}
	return 0, nil
}

func (m *mockBookingRepo) EnsureIndexes() error { return nil }

// --- Stub Notifier ---

type stubNotifier struct {
	payloads []models.BookingEmailPayload
}

func (s *stubNotifier) EnqueueBookingConfirmation(ctx context.Context, payload models.BookingEmailPayload) error {
	s.payloads = append(s.payloads, payload)
	return nil
}

// --- Fixtures ---

var refIDPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func kayaking() *models.Experience {
	return &models.Experience{
		ID:       "exp-1",
		Title:    "Kayaking",
		Location: "Udupi",
		Image:    "/kayaking-in-river.jpg",
		Price:    999,
		Taxes:    59,
		IsActive: true,
	}
}

func validInput() models.BookingInput {
	return models.BookingInput{
		ExperienceID:    "exp-1",
		ExperienceTitle: "Kayaking",
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		Date:            "Oct 22",
		Time:            "07:00 am",
		Location:        "Udupi",
		Quantity:        2,
		Price:           999,
		Taxes:           59,
		Total:           2057,
		AgreedToTerms:   true,
	}
}

func newService(expRepo *mockExperienceRepo, bkRepo *mockBookingRepo, notifier *stubNotifier) *DefaultBookingService {
	svc := &DefaultBookingService{
		ExperienceRepo: expRepo,
		BookingRepo:    bkRepo,
	}
	if notifier != nil {
		svc.Notifier = notifier
	}
	return svc
}

// --- Tests ---

func TestCreateBooking_Success(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return kayaking(), nil
		},
	}
	var inserted *models.Booking
	var reservedUnits, reservedCapacity int
	bkRepo := &mockBookingRepo{
		insertFn: func(ctx context.Context, booking *models.Booking) error {
			inserted = booking
			return nil
		},
		reserveFn: func(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error {
			reservedUnits, reservedCapacity = units, capacity
			return nil
		},
	}
	notifier := &stubNotifier{}
	svc := newService(expRepo, bkRepo, notifier)

	confirmation, err := svc.CreateBooking(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Regexp(t, refIDPattern, confirmation.RefID)
	assert.Equal(t, "Kayaking", confirmation.ExperienceTitle)
	assert.Equal(t, 2, confirmation.Quantity)
	assert.Equal(t, 2057.0, confirmation.Total) // client total stored verbatim
	assert.Equal(t, "asha@example.com", confirmation.Email)

	assert.Equal(t, 2, reservedUnits)
	assert.Equal(t, models.SlotCapacity, reservedCapacity)
	assert.Equal(t, models.BookingStatusConfirmed, inserted.Status)
	assert.NotEmpty(t, inserted.ID)

	assert.Len(t, notifier.payloads, 1)
	assert.Equal(t, confirmation.RefID, notifier.payloads[0].RefID)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	svc := newService(&mockExperienceRepo{}, &mockBookingRepo{}, nil)

	input := validInput()
	input.Email = ""

	_, err := svc.CreateBooking(context.Background(), input)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Missing required fields", validationErr.Message)
}

func TestCreateBooking_TermsNotAgreed(t *testing.T) {
	svc := newService(&mockExperienceRepo{}, &mockBookingRepo{}, nil)

	input := validInput()
	input.AgreedToTerms = false

	_, err := svc.CreateBooking(context.Background(), input)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Missing required fields", validationErr.Message)
}

func TestCreateBooking_InvalidEmail(t *testing.T) {
	svc := newService(&mockExperienceRepo{}, &mockBookingRepo{}, nil)

	input := validInput()
	input.Email = "not-an-email"

	_, err := svc.CreateBooking(context.Background(), input)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid email format", validationErr.Message)
}

func TestCreateBooking_ExperienceNotFound(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := newService(expRepo, &mockBookingRepo{}, nil)

	_, err := svc.CreateBooking(context.Background(), validInput())

	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestCreateBooking_CapacityExceededReportsRemaining(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return kayaking(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		reserveFn: func(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error {
			return bookingRepo.ErrCapacityExceeded
		},
		usageFn: func(ctx context.Context, experienceID, date, timeLabel string) (int, error) {
			return 9, nil
		},
	}
	svc := newService(expRepo, bkRepo, nil)

	input := validInput()
	input.Quantity = 2

	_, err := svc.CreateBooking(context.Background(), input)

	var capacityErr *CapacityError
	assert.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 1, capacityErr.Available)
}

func TestCreateBooking_LastUnitSucceeds(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return kayaking(), nil
		},
	}
	// Nine units already booked; a request for one more fits.
	booked := 9
	bkRepo := &mockBookingRepo{
		reserveFn: func(ctx context.Context, experienceID, date, timeLabel string, units, capacity int) error {
			if booked+units > capacity {
				return bookingRepo.ErrCapacityExceeded
			}
			booked += units
			return nil
		},
	}
	svc := newService(expRepo, bkRepo, nil)

	input := validInput()
	input.Quantity = 1

	confirmation, err := svc.CreateBooking(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 1, confirmation.Quantity)
	assert.Equal(t, 10, booked)
}

func TestCreateBooking_RetriesOnDuplicateRefID(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return kayaking(), nil
		},
	}
	var refIDs []string
	bkRepo := &mockBookingRepo{}
	bkRepo.insertFn = func(ctx context.Context, booking *models.Booking) error {
		refIDs = append(refIDs, booking.RefID)
		if bkRepo.insertCalls == 1 {
			return bookingRepo.ErrDuplicateRefID
		}
		return nil
	}
	svc := newService(expRepo, bkRepo, nil)

	confirmation, err := svc.CreateBooking(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, 2, bkRepo.insertCalls)
	assert.NotEqual(t, refIDs[0], refIDs[1])
	assert.Equal(t, refIDs[1], confirmation.RefID)
}

func TestCreateBooking_ReleasesCapacityWhenInsertFails(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return kayaking(), nil
		},
	}
	var released int
	bkRepo := &mockBookingRepo{
		insertFn: func(ctx context.Context, booking *models.Booking) error {
			return errors.New("write concern error")
		},
		releaseFn: func(ctx context.Context, experienceID, date, timeLabel string, units int) error {
			released = units
			return nil
		},
	}
	svc := newService(expRepo, bkRepo, nil)

	_, err := svc.CreateBooking(context.Background(), validInput())

	assert.Error(t, err)
	assert.Equal(t, 1, bkRepo.releaseCalls)
	assert.Equal(t, 2, released)
}

func TestGetBookingByRefID_PopulatesExperience(t *testing.T) {
	expRepo := &mockExperienceRepo{
		getFn: func(ctx context.Context, id string) (*models.Experience, error) {
			return kayaking(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		getByRefFn: func(ctx context.Context, refID string) (*models.Booking, error) {
			return &models.Booking{
				RefID:        refID,
				ExperienceID: "exp-1",
				FullName:     "Asha Rao",
				Status:       models.BookingStatusConfirmed,
			}, nil
		},
	}
	svc := newService(expRepo, bkRepo, nil)

	detail, err := svc.GetBookingByRefID(context.Background(), "AB12CD34")

	assert.NoError(t, err)
	assert.Equal(t, "AB12CD34", detail.RefID)
	assert.NotNil(t, detail.Experience)
	assert.Equal(t, "Kayaking", detail.Experience.Title)
	assert.Equal(t, "/kayaking-in-river.jpg", detail.Experience.Image)
}

func TestGetBookingByRefID_NotFound(t *testing.T) {
	bkRepo := &mockBookingRepo{
		getByRefFn: func(ctx context.Context, refID string) (*models.Booking, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := newService(&mockExperienceRepo{}, bkRepo, nil)

	_, err := svc.GetBookingByRefID(context.Background(), "ZZZZZZZZ")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
