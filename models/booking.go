package models

import "time"

// SlotCapacity is the fixed number of units sellable per (experience, date,
// time) slot. It is independent of the seeded per-slot Available figure on the
// Experience document, which is a display hint only.
const SlotCapacity = 10

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusPending   = "pending"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	ExperienceID    string    `bson:"experienceId" json:"experienceId"`
	ExperienceTitle string    `bson:"experienceTitle" json:"experienceTitle"`
	FullName        string    `bson:"fullName" json:"fullName"`
	Email           string    `bson:"email" json:"email"`
	Date            string    `bson:"date" json:"date"`
	Time            string    `bson:"time" json:"time"`
	Location        string    `bson:"location" json:"location"`
	Quantity        int       `bson:"quantity" json:"quantity"` // must be >= 1
	Price           float64   `bson:"price" json:"price"`
	Taxes           float64   `bson:"taxes" json:"taxes"`
	Total           float64   `bson:"total" json:"total"`
	PromoCode       string    `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	Discount        float64   `bson:"discount" json:"discount"`
	RefID           string    `bson:"refId" json:"refId"` // globally unique, 8 chars [A-Z0-9]
	Status          string    `bson:"status" json:"status"`
	AgreedToTerms   bool      `bson:"agreedToTerms" json:"agreedToTerms"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingInput is the checkout payload submitted by the storefront.
type BookingInput struct {
	ExperienceID    string  `json:"experienceId"`
	ExperienceTitle string  `json:"experienceTitle"`
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Location        string  `json:"location"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Taxes           float64 `json:"taxes"`
	Total           float64 `json:"total"`
	PromoCode       string  `json:"promoCode"`
	Discount        float64 `json:"discount"`
	AgreedToTerms   bool    `json:"agreedToTerms"`
}

// BookingConfirmation is the minimal payload returned after a booking is
// confirmed.
type BookingConfirmation struct {
	RefID           string  `json:"refId"`
	ExperienceTitle string  `json:"experienceTitle"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Quantity        int     `json:"quantity"`
	Total           float64 `json:"total"`
	Email           string  `json:"email"`
}

// BookingDetail is a stored booking with its experience summary populated.
type BookingDetail struct {
	Booking
	Experience *ExperienceRef `json:"experience,omitempty"`
}

// SlotUsage tracks booked units per (experience, date, time) slot. Capacity
// reservations are atomic conditional increments against this document.
type SlotUsage struct {
	ExperienceID string `bson:"experienceId" json:"experienceId"`
	Date         string `bson:"date" json:"date"`
	Time         string `bson:"time" json:"time"`
	Booked       int    `bson:"booked" json:"booked"`
}
