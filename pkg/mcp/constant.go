package mcp

// Client defaults
const (
	DefaultClientName    = "decision-router"
	DefaultClientVersion = "1.0.0"
)
