package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvidersConfigured indicates no provider is configured
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")
	// ErrProviderTimeout indicates a provider request exceeded its deadline
	ErrProviderTimeout = errors.New("provider timeout")
	// ErrProviderUnavailable indicates any other provider failure
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrEmptyResponse indicates the provider answered without any content
	ErrEmptyResponse = errors.New("empty response")
	// ErrUnsupportedProvider indicates an unknown provider name in config
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
