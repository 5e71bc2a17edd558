package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"match-night/internal/auctionerrors"
	"match-night/utils"

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
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrParticipantNotFound):
		return http.StatusNotFound, "participant not found"
	case errors.Is(err, auctionerrors.ErrSnapshotNotFound):
		return http.StatusNotFound, "report not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrItemNotActive):
		return http.StatusConflict, "item is not active"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInsufficientBalance):
		return http.StatusConflict, "insufficient balance"
	case errors.Is(err, auctionerrors.ErrLikeCapReached):
		return http.StatusConflict, "like cap reached"
	case errors.Is(err, auctionerrors.ErrPipelineRunning):
		return http.StatusConflict, "match pipeline already running"
	case errors.Is(err, auctionerrors.ErrNoParticipants):
		return http.StatusUnprocessableEntity, "no participants in session"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
