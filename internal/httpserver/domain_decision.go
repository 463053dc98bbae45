package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	decisionHTTP "decision-router/internal/decision/delivery/http"
	decisionMCP "decision-router/internal/decision/delivery/mcp"
)

// setupDecisionDomain exposes the decision use case over REST and MCP.
func (srv *HTTPServer) setupDecisionDomain(ctx context.Context, api *gin.RouterGroup) error {
	// REST: POST /api/v1/decide
	h := decisionHTTP.New(srv.l, srv.decisionUC)
	decisionHTTP.RegisterRoutes(api, h, srv.middleware)

	// MCP: the decide tool on /mcp
	decisionMCP.Register(srv.mcpServer, decisionMCP.New(srv.l, srv.decisionUC))
	srv.gin.POST("/mcp", srv.middleware.RateLimit(), srv.mcpServer.Handle)
	srv.gin.GET("/mcp", srv.mcpServer.Handle)
	srv.gin.DELETE("/mcp", srv.mcpServer.Handle)

	srv.l.Infof(ctx, "Decision domain registered at POST /api/v1/decide and /mcp")
	return nil
}
