package mcpserver

import "time"

// Server defaults
const (
	DefaultServerName    = "DecisionMCP"
	DefaultServerVersion = "1.0.0"
	DefaultSessionTTL    = time.Hour
)

// Log prefixes
const (
	LogPrefixCallTool = "internal.mcpserver.callTool"
	LogPrefixRegister = "internal.mcpserver.Register"
)
