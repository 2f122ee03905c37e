package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit/services/promo"
)

// PromoHandler serves promo code validation.
type PromoHandler struct {
	Service promo.PromoService
	Logger  *zap.Logger
}

func NewPromoHandler(svc promo.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{Service: svc, Logger: logger}
}

// ValidatePromoHandler applies a promo code to a checkout subtotal.
func (h *PromoHandler) ValidatePromoHandler(c *gin.Context) {
	var input struct {
		Code     string  `json:"code"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}
	if input.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Promo code is required",
		})
		return
	}

	result, err := h.Service.Validate(c.Request.Context(), input.Code, input.Subtotal)
	if err != nil {
		var rejection *promo.RejectionError
		switch {
		case errors.Is(err, promo.ErrInvalidCode):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Invalid promo code",
			})
		case errors.As(err, &rejection):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": rejection.Message,
			})
		default:
			h.Logger.Error("Failed to validate promo code", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error validating promo code",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Promo code applied successfully",
		"data":    result,
	})
}
