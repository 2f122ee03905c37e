package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookit/handlers"
)

// RegisterExperienceRoutes registers the storefront catalog endpoints.
func RegisterExperienceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experiences")
	{
		api.GET("", hb.ListExperiencesHandler)
		api.GET("/:id", hb.GetExperienceHandler)
	}
}

// RegisterBookingRoutes registers booking creation and lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("/:refId", hb.GetBookingHandler)
	}
}

// RegisterPromoRoutes registers promo validation endpoints.
func RegisterPromoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/promo")
	{
		api.POST("/validate", hb.ValidatePromoHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterExperienceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPromoRoutes(r, hb)
	RegisterHealthRoute(r, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
		})
	})
}
