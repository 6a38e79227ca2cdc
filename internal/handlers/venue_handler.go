package handlers

import (
	"matchday/internal/middleware"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueService services.VenueService
	production   bool
}

func NewVenueHandler(venueService services.VenueService, production bool) *VenueHandler {
	return &VenueHandler{venueService: venueService, production: production}
}

// List handles GET /api/venues
func (h *VenueHandler) List(c *gin.Context) {
	filter := &interfaces.VenueFilter{
		City:       c.Query("city"),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("include_inactive") != "true",
	}
	params := utils.GetPaginationParams(c)

	venues, total, err := h.venueService.List(c.Request.Context(), filter, params)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.PaginatedResponse(c, venues, len(venues), params.Meta(total))
}

// Get handles GET /api/venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	venue, err := h.venueService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "", venue)
}

// Create handles POST /api/venues (admin)
func (h *VenueHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	var request services.CreateVenueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), user, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.CreatedResponse(c, "Venue created", venue)
}

// Update handles PUT /api/venues/:id (admin)
func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var request services.UpdateVenueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Venue updated", venue)
}

// Delete handles DELETE /api/venues/:id (admin, soft delete)
func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.venueService.Deactivate(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Venue deactivated", nil)
}
