package handlers

import (
	"matchday/internal/middleware"
	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type SeasonPassHandler struct {
	passService services.SeasonPassService
	production  bool
}

func NewSeasonPassHandler(passService services.SeasonPassService, production bool) *SeasonPassHandler {
	return &SeasonPassHandler{passService: passService, production: production}
}

// List handles GET /api/season-passes
func (h *SeasonPassHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	passes, err := h.passService.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "", passes)
}

// Get handles GET /api/season-passes/:id
func (h *SeasonPassHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	pass, err := h.passService.Get(c.Request.Context(), user, id)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "", pass)
}

// Create handles POST /api/season-passes
func (h *SeasonPassHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	var request services.CreateSeasonPassRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	pass, err := h.passService.Create(c.Request.Context(), user, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.CreatedResponse(c, "Season pass purchased", pass)
}
