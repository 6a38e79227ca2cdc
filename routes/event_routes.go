package routes

import (
	"matchday/internal/handlers"
	"matchday/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupEventRoutes sets up public browsing and admin management routes
func SetupEventRoutes(r *gin.RouterGroup, eventHandler *handlers.EventHandler, authRequired gin.HandlerFunc) {
	events := r.Group("/events")
	{
		events.GET("", eventHandler.List)
		events.GET("/:id", eventHandler.Get)
	}

	admin := r.Group("/events")
	admin.Use(authRequired, middleware.AdminRequired())
	{
		admin.POST("", eventHandler.Create)
		admin.PUT("/:id", eventHandler.Update)
		admin.DELETE("/:id", eventHandler.Delete)
		admin.GET("/:id/stats", eventHandler.Stats)
	}
}
