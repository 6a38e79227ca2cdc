package handlers

import (
	"time"

	"matchday/internal/middleware"
	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService services.EventService
	production   bool
}

func NewEventHandler(eventService services.EventService, production bool) *EventHandler {
	return &EventHandler{eventService: eventService, production: production}
}

// List handles GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	filter := &interfaces.EventFilter{
		Sport:      models.Sport(c.Query("sport")),
		Status:     models.EventStatus(c.Query("status")),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		ActiveOnly: true,
	}
	if raw := c.Query("start_date"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.StartDate = &t
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.EndDate = &t
		}
	}

	params := utils.GetPaginationParams(c)

	events, total, err := h.eventService.List(c.Request.Context(), filter, params)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.PaginatedResponse(c, events, len(events), params.Meta(total))
}

// Get handles GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "", event)
}

// Create handles POST /api/events (admin)
func (h *EventHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	var request services.CreateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), user, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.CreatedResponse(c, "Event created", event)
}

// Update handles PUT /api/events/:id (admin)
func (h *EventHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var request services.UpdateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), user, id, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Event updated", event)
}

// Delete handles DELETE /api/events/:id (admin)
func (h *EventHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), user, id); err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Event deleted", nil)
}

// Stats handles GET /api/events/:id/stats (admin)
func (h *EventHandler) Stats(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	stats, err := h.eventService.Stats(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "", stats)
}
