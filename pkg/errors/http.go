package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered over HTTP.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code mirrors the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// ErrInternalServerError is returned for anything the delivery layer does not map explicitly.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")

// AsHTTPError reports whether err (or anything it wraps) is an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
