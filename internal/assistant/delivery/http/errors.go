package http

import (
	"errors"
	"fmt"
	"net/http"

	"ai-task-assistant/internal/assistant"
	pkgErrors "ai-task-assistant/pkg/errors"
)

var (
	errUnauthorized = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized")

	errTimeout     = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "AI request timed out. Please try again.")
	errUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "AI assistant temporarily unavailable")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var rle *assistant.RateLimitError
	switch {
	case errors.As(err, &rle):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, rle.Error())
	case errors.Is(err, assistant.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Query cannot be empty")
	case errors.Is(err, assistant.ErrQueryTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Query too long (maximum 1000 characters)")
	case errors.Is(err, assistant.ErrInvalidPagination):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Limit must be between 1 and 50 and offset must be non-negative")
	case errors.Is(err, assistant.ErrInvalidInteractionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid interaction ID format")
	case errors.Is(err, assistant.ErrInteractionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Interaction not found or does not belong to user")
	case errors.Is(err, assistant.ErrNoSuggestions):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No task breakdown suggestions found for this interaction")
	case errors.Is(err, assistant.ErrTooManySuggestions):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Cannot create more than %d tasks at once", assistant.MaxSuggestions))
	case errors.Is(err, assistant.ErrCorruptSuggestions):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to parse task suggestions")
	case errors.Is(err, assistant.ErrNoTasksCreated):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create any tasks from suggestions")
	case errors.Is(err, assistant.ErrBackendTimeout):
		return errTimeout
	case errors.Is(err, assistant.ErrBackendUnavailable), errors.Is(err, assistant.ErrTaskSourceUnavailable):
		return errUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
