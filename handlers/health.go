package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookit/utils"
)

// HealthHandler reports liveness along with the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "BookIt API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  utils.GetHealthStatus(),
	})
}
