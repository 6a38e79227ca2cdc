package routes

import (
	"matchday/internal/handlers"
	"matchday/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes sets up ticket purchase, management and gate validation routes
func SetupTicketRoutes(r *gin.RouterGroup, ticketHandler *handlers.TicketHandler, authRequired gin.HandlerFunc) {
	tickets := r.Group("/tickets")
	tickets.Use(authRequired)
	{
		tickets.GET("", ticketHandler.List)
		tickets.POST("", ticketHandler.Purchase)
		tickets.GET("/:id", ticketHandler.Get)
		tickets.GET("/:id/qr", ticketHandler.QRCode)
		tickets.PUT("/:id/cancel", ticketHandler.Cancel)
	}

	gate := r.Group("/tickets")
	gate.Use(authRequired, middleware.AdminRequired())
	{
		gate.POST("/validate", ticketHandler.Validate)
	}
}
