package handlers

import (
	"errors"
	"net/http"

	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// handleServiceError maps domain errors to HTTP responses. Unknown errors
// become a 500 with the detail hidden in production.
func handleServiceError(c *gin.Context, err error, production bool) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, utils.ValidationErrors(err))
		return
	}

	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrVenueNotFound),
		errors.Is(err, services.ErrTicketNotFound),
		errors.Is(err, services.ErrSeasonPassNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrNotOwner):
		utils.ForbiddenResponse(c, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountDeactivated):
		utils.UnauthorizedResponse(c, err.Error())

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrWrongPassword),
		errors.Is(err, services.ErrPastEvent),
		errors.Is(err, services.ErrEventDateInPast),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInsufficientSeats),
		errors.Is(err, services.ErrCancellationWindow),
		errors.Is(err, services.ErrTicketNotActive),
		errors.Is(err, services.ErrTicketNotForToday),
		errors.Is(err, services.ErrSeasonPassValidity):
		utils.BadRequestResponse(c, err.Error())

	default:
		utils.InternalErrorResponse(c, utils.ErrInternalServer, err, production)
	}
}

// parseObjectID reads an ObjectID path parameter, writing a 400 on failure.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+param)
		return primitive.NilObjectID, false
	}
	return id, true
}
