package mcp

import (
	"context"
	"encoding/json"
)

// IMCP is a remote MCP endpoint exposing callable tools.
// Implementations are safe for concurrent use.
type IMCP interface {
	CallTool(ctx context.Context, name string, args map[string]any) (json.RawMessage, error)
	Ping(ctx context.Context) error
	Name() string
}
