package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/event-planner-api/internal/application"
	"github.com/oksasatya/event-planner-api/pkg/response"
)

// writeServiceError maps application error kinds to HTTP outcomes. Duplicate
// records and invalid state transitions are 400 (not 409) to match the public
// API contract.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "incorrect email or password", nil)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "not authenticated", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "not authorized", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrConflict):
		response.Error(c, http.StatusBadRequest, "already exists", nil)
	case errors.Is(err, application.ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "invalid rsvp status", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
