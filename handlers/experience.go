package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit/services/catalog"
)

// ExperienceHandler serves the storefront catalog endpoints.
type ExperienceHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

func NewExperienceHandler(svc catalog.CatalogService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{Service: svc, Logger: logger}
}

// ListExperiencesHandler returns active experiences, newest first.
func (h *ExperienceHandler) ListExperiencesHandler(c *gin.Context) {
	summaries, err := h.Service.ListExperiences(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list experiences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching experiences",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(summaries),
		"data":    summaries,
	})
}

// GetExperienceHandler returns one experience with recomputed slot
// availability.
func (h *ExperienceHandler) GetExperienceHandler(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.Service.GetExperience(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Experience not found",
			})
			return
		}
		h.Logger.Error("Failed to fetch experience", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching experience details",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}
