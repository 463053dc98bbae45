package mcp

import (
	"decision-router/internal/decision"
	"decision-router/internal/mcpserver"
	"decision-router/pkg/log"
)

// ToolName is the single tool the router exposes.
const ToolName = "decide"

type decideTool struct {
	l  log.Logger
	uc decision.UseCase
}

var _ mcpserver.Tool = (*decideTool)(nil)

// New creates the decide tool backed by uc.
func New(l log.Logger, uc decision.UseCase) *decideTool {
	return &decideTool{
		l:  l,
		uc: uc,
	}
}

// Register publishes the decide tool on s.
func Register(s *mcpserver.Server, t *decideTool) {
	s.Register(t)
}
