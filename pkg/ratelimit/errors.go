package ratelimit

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is matched by every *ExceededError.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// ExceededError reports a rejected admission together with the configured limit
// so callers can tell the client how to back off.
type ExceededError struct {
	Limit int
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("Rate limit exceeded. Maximum %d requests per minute.", e.Limit)
}

func (e *ExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}
