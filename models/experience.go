package models

import "time"

// TimeSlot is a bookable time label on an experience. The seeded Available
// count is a display hint; live availability is recomputed from confirmed
// bookings at read time.
type TimeSlot struct {
	Time      string `bson:"time" json:"time"`
	Available int    `bson:"available" json:"available"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"` // "available" or "sold-out"
}

// Experience represents a bookable activity offering.
type Experience struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Location    string     `bson:"location" json:"location"`
	Image       string     `bson:"image" json:"image"`
	Price       float64    `bson:"price" json:"price"` // must be >= 0
	Description string     `bson:"description" json:"description"`
	Dates       []string   `bson:"dates" json:"dates"`
	Times       []TimeSlot `bson:"times" json:"times"`
	About       string     `bson:"about" json:"about"`
	Taxes       float64    `bson:"taxes" json:"taxes"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ExperienceSummary is the storefront list view: schedule and long-form
// fields stripped.
type ExperienceSummary struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Location    string    `bson:"location" json:"location"`
	Image       string    `bson:"image" json:"image"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	Taxes       float64   `bson:"taxes" json:"taxes"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TimeSlotView is a time slot with live availability for the detail page.
// Status is only present when the slot is sold out.
type TimeSlotView struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
	Status    string `json:"status,omitempty"`
}

// ExperienceDetail is the product page view: the experience document with
// per-slot availability recomputed from confirmed bookings.
type ExperienceDetail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Image       string         `json:"image"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Dates       []string       `json:"dates"`
	Times       []TimeSlotView `json:"times"`
	About       string         `json:"about"`
	Taxes       float64        `json:"taxes"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ExperienceRef is the minimal experience summary embedded in a booking
// lookup response.
type ExperienceRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Image    string `json:"image"`
}
