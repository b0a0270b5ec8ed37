package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuery          = errors.New("invalid query")
	ErrEmptyQuery            = fmt.Errorf("%w: query cannot be empty", ErrInvalidQuery)
	ErrQueryTooLong          = fmt.Errorf("%w: query too long (max 1000 characters)", ErrInvalidQuery)
	ErrRateLimitExceeded     = errors.New("rate limit exceeded")
	ErrBackendUnavailable    = errors.New("AI service unavailable")
	ErrBackendTimeout        = fmt.Errorf("%w: AI request timed out", ErrBackendUnavailable)
	ErrTaskSourceUnavailable = errors.New("task source unavailable")

	ErrInvalidPagination    = errors.New("invalid pagination")
	ErrInvalidInteractionID = errors.New("invalid interaction ID format")
	ErrInteractionNotFound  = errors.New("interaction not found")
	ErrNoSuggestions        = errors.New("no suggestions found in this interaction")
	ErrCorruptSuggestions   = errors.New("failed to parse suggestions")
	ErrTooManySuggestions   = errors.New("cannot create more than 10 tasks at once")
	ErrNoTasksCreated       = errors.New("failed to create any tasks")
)

// RateLimitError reports a rejected query together with the configured limit.
type RateLimitError struct {
	Limit int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Rate limit exceeded. Maximum %d requests per minute.", e.Limit)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}
