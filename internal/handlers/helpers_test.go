package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchday/internal/services"
	"matchday/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseFor(t *testing.T, err error, production bool) (int, *utils.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	handleServiceError(c, err, production)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestHandleServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{services.ErrEventNotFound, http.StatusNotFound},
		{services.ErrTicketNotFound, http.StatusNotFound},
		{services.ErrNotOwner, http.StatusForbidden},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrEmailTaken, http.StatusBadRequest},
		{services.ErrInsufficientSeats, http.StatusBadRequest},
		{services.ErrCancellationWindow, http.StatusBadRequest},
		{services.ErrTicketNotForToday, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, body := responseFor(t, tt.err, false)
			assert.Equal(t, tt.code, code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestHandleServiceErrorUnknown(t *testing.T) {
	code, body := responseFor(t, errors.New("mongo exploded"), false)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body.Error, "mongo exploded")
}

func TestHandleServiceErrorHidesDetailInProduction(t *testing.T) {
	code, body := responseFor(t, errors.New("mongo exploded"), true)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, body.Error, "mongo exploded")
}
