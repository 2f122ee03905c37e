package models

// BookingEmailPayload carries the fields needed to send a booking
// confirmation email.
type BookingEmailPayload struct {
	RefID           string  `json:"refId"`
	Email           string  `json:"email"`
	FullName        string  `json:"fullName"`
	ExperienceTitle string  `json:"experienceTitle"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Quantity        int     `json:"quantity"`
	Total           float64 `json:"total"`
}
