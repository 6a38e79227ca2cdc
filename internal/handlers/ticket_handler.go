package handlers

import (
	"net/http"

	"matchday/internal/middleware"
	"matchday/internal/models"
	"matchday/internal/monitoring"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketHandler struct {
	ticketService services.TicketService
	production    bool
}

func NewTicketHandler(ticketService services.TicketService, production bool) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, production: production}
}

// Purchase handles POST /api/tickets
func (h *TicketHandler) Purchase(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	var request services.PurchaseTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.ticketService.Purchase(c.Request.Context(), user, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	monitoring.TrackTicketSale(request.EventID, request.Category, len(result.Tickets))
	utils.CreatedResponse(c, "Tickets purchased", result)
}

// List handles GET /api/tickets
func (h *TicketHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	filter := &interfaces.TicketFilter{
		Status: models.TicketStatus(c.Query("status")),
	}
	if raw := c.Query("event_id"); raw != "" {
		if eventID, err := primitive.ObjectIDFromHex(raw); err == nil {
			filter.Event = &eventID
		}
	}

	params := utils.GetPaginationParams(c)

	tickets, total, err := h.ticketService.ListMine(c.Request.Context(), user.ID, filter, params)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.PaginatedResponse(c, tickets, len(tickets), params.Meta(total))
}

// Get handles GET /api/tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.Get(c.Request.Context(), user, id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "", ticket)
}

// Cancel handles PUT /api/tickets/:id/cancel
func (h *TicketHandler) Cancel(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	result, err := h.ticketService.Cancel(c.Request.Context(), user, id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	monitoring.TrackTicketCancellation()
	utils.SuccessResponse(c, "Ticket cancelled", result)
}

// Validate handles POST /api/tickets/validate (admin gate scan)
func (h *TicketHandler) Validate(c *gin.Context) {
	var request struct {
		EntryCode string `json:"entry_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "entry_code is required")
		return
	}

	ticket, err := h.ticketService.Validate(c.Request.Context(), request.EntryCode)
	if err != nil {
		monitoring.TrackValidation("rejected")
		handleServiceError(c, err, h.production)
		return
	}

	monitoring.TrackValidation("accepted")
	utils.SuccessResponse(c, "Ticket validated", ticket)
}

// QRCode handles GET /api/tickets/:id/qr
func (h *TicketHandler) QRCode(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	png, err := h.ticketService.QRCode(c.Request.Context(), user, id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
