package mcpserver

import (
	"net/http"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"decision-router/pkg/log"
)

// Server serves the tools of a ToolRegistry over the MCP streamable HTTP
// transport.
type Server struct {
	l        log.Logger
	info     Info
	registry *ToolRegistry
	mcp      *mcpsdk.Server
	handler  http.Handler
}

// New creates a Server. Idle sessions are closed after sessionTTL; zero uses
// DefaultSessionTTL.
func New(l log.Logger, info Info, sessionTTL time.Duration) *Server {
	if info.Name == "" {
		info.Name = DefaultServerName
	}
	if info.Version == "" {
		info.Version = DefaultServerVersion
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	s := &Server{
		l:        l,
		info:     info,
		registry: NewToolRegistry(),
		mcp: mcpsdk.NewServer(
			&mcpsdk.Implementation{Name: info.Name, Version: info.Version},
			&mcpsdk.ServerOptions{Instructions: info.Instructions},
		),
	}
	s.handler = mcpsdk.NewStreamableHTTPHandler(
		func(*http.Request) *mcpsdk.Server { return s.mcp },
		&mcpsdk.StreamableHTTPOptions{SessionTimeout: sessionTTL},
	)
	return s
}

// Registry returns the tools served by s.
func (s *Server) Registry() *ToolRegistry {
	return s.registry
}
