package routes

import (
	"matchday/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up routes for registration, login and profile management
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, authRequired gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	me := r.Group("/auth")
	me.Use(authRequired)
	{
		me.GET("/me", authHandler.Me)
		me.PUT("/profile", authHandler.UpdateProfile)
		me.PUT("/change-password", authHandler.ChangePassword)
	}
}
