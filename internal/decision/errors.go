package decision

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUserInput = errors.New("user_input is required")
	ErrInvalidDate      = errors.New("data.date must be a YYYY-MM-DD string")
)

// DownstreamError reports a failed call to one of the remote services.
type DownstreamError struct {
	Service   string
	Operation string
	Timeout   bool
	Err       error
}

func (e *DownstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s service: %s timed out: %v", e.Service, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s service: %s failed: %v", e.Service, e.Operation, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}

// AsDownstreamError reports whether err wraps a DownstreamError.
func AsDownstreamError(err error) (*DownstreamError, bool) {
	var de *DownstreamError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
