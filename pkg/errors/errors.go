package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and envelope code the
// delivery layer should respond with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose envelope code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// NewHTTPErrorf is NewHTTPError with a format string.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return NewHTTPError(statusCode, fmt.Sprintf(format, args...))
}

var (
	ErrBadRequest         = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrInternalServer     = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests    = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrServiceUnavailable = NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
)

// AsHTTPError reports whether err (or anything it wraps) is an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
