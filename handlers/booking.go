package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit/models"
	"bookit/services/booking"
)

// BookingHandler serves booking creation and lookup.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler accepts a checkout payload and persists a confirmed
// booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	confirmation, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		var validationErr *booking.ValidationError
		var capacityErr *booking.CapacityError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": validationErr.Message,
			})
		case errors.As(err, &capacityErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   "Not enough slots available",
				"available": capacityErr.Available,
			})
		case errors.Is(err, booking.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Experience not found",
			})
		default:
			h.Logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error creating booking",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed successfully",
		"data":    confirmation,
	})
}

// GetBookingHandler returns a booking by its reference ID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	refID := c.Param("refId")

	detail, err := h.Service.GetBookingByRefID(c.Request.Context(), refID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		h.Logger.Error("Failed to fetch booking", zap.String("refId", refID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching booking",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}
