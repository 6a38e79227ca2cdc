package routes

import (
	"matchday/internal/handlers"
	"matchday/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVenueRoutes sets up public venue browsing and admin management routes
func SetupVenueRoutes(r *gin.RouterGroup, venueHandler *handlers.VenueHandler, authRequired gin.HandlerFunc) {
	venues := r.Group("/venues")
	{
		venues.GET("", venueHandler.List)
		venues.GET("/:id", venueHandler.Get)
	}

	admin := r.Group("/venues")
	admin.Use(authRequired, middleware.AdminRequired())
	{
		admin.POST("", venueHandler.Create)
		admin.PUT("/:id", venueHandler.Update)
		admin.DELETE("/:id", venueHandler.Delete)
	}
}
