package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the route handlers passed to route registration.
type HandlerBundle struct {
	// Experience catalog endpoints.
	ListExperiencesHandler gin.HandlerFunc
	GetExperienceHandler   gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc

	// Promo endpoints.
	ValidatePromoHandler gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}
