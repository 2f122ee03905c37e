package booking

import (
	"regexp"

	"bookit/models"
)

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// validateInput performs the required-field and email-format checks on a
// booking payload.
func validateInput(input models.BookingInput) error {
	if input.ExperienceID == "" || input.FullName == "" || input.Email == "" ||
		input.Date == "" || input.Time == "" || input.Quantity == 0 || !input.AgreedToTerms {
		return &ValidationError{Message: "Missing required fields"}
	}
	if input.Quantity < 1 {
		return &ValidationError{Message: "Quantity must be at least 1"}
	}
	if !emailRegex.MatchString(input.Email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	return nil
}
