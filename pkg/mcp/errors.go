package mcp

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL is returned when a client is built without an endpoint.
	ErrEmptyURL = errors.New("mcp endpoint url is required")

	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("mcp client closed")
)

// ToolError is returned when a tool reports isError.
type ToolError struct {
	Tool    string
	Message string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s failed: %s", e.Tool, e.Message)
}
