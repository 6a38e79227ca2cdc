package routes

import (
	"matchday/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSeasonPassRoutes sets up season pass purchase and listing routes
func SetupSeasonPassRoutes(r *gin.RouterGroup, passHandler *handlers.SeasonPassHandler, authRequired gin.HandlerFunc) {
	passes := r.Group("/season-passes")
	passes.Use(authRequired)
	{
		passes.GET("", passHandler.List)
		passes.POST("", passHandler.Create)
		passes.GET("/:id", passHandler.Get)
	}
}
