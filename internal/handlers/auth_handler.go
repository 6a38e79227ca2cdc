package handlers

import (
	"matchday/internal/middleware"
	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	production  bool
}

func NewAuthHandler(authService services.AuthService, production bool) *AuthHandler {
	return &AuthHandler{authService: authService, production: production}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var request services.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.CreatedResponse(c, "Registration successful", response)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Login successful", response)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	utils.SuccessResponse(c, "", user.Summary())
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	var request services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	updated, err := h.authService.UpdateProfile(c.Request.Context(), user.ID, &request)
	if err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Profile updated", updated.Summary())
}

// ChangePassword handles PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	var request services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user.ID, &request); err != nil {
		handleServiceError(c, err, h.production)
		return
	}

	utils.SuccessResponse(c, "Password changed", nil)
}
