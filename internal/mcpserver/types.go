package mcpserver

import "context"

// Tool is a callable exposed over tools/list and tools/call.
type Tool interface {
	// Name returns the tool name clients call it by.
	Name() string

	// Description returns what the tool does.
	Description() string

	// InputSchema returns the JSON schema of the tool arguments.
	InputSchema() map[string]any

	// Execute runs the tool with validated arguments. The returned value is
	// sent back as structured content.
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// Info identifies the server during initialize.
type Info struct {
	Name         string
	Version      string
	Instructions string
}
