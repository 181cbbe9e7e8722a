package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"market-simulator/internal/simerrors"
	"market-simulator/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, simerrors.ErrRunNotFound), errors.Is(err, simerrors.ErrNoActivity):
		return http.StatusNotFound, "run not found"
	case errors.Is(err, simerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, simerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid simulation request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
