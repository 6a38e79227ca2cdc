package routes

import (
	"matchday/internal/handlers"
	"matchday/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUploadRoutes sets up admin image upload routes
func SetupUploadRoutes(r *gin.RouterGroup, uploadHandler *handlers.UploadHandler, authRequired gin.HandlerFunc) {
	uploads := r.Group("/uploads")
	uploads.Use(authRequired, middleware.AdminRequired())
	{
		uploads.POST("/:kind", uploadHandler.Upload)
	}
}
