package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"decision-router/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Decision router is up"
	HealthVersion = "1.0.0"
	ServiceName   = "decision-router"

	readyTimeout = 5 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings every downstream MCP service.
// @Summary Readiness Check
// @Description Ready when all downstream MCP services answer ping
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A downstream service is unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := srv.pingEndpoints(ctx)

	ready := true
	for _, status := range checks {
		if status != "ok" {
			ready = false
		}
	}

	data := gin.H{
		"version":    HealthVersion,
		"service":    ServiceName,
		"downstream": checks,
	}
	if !ready {
		data["status"] = "not_ready"
		response.ServiceUnavailable(c, data)
		return
	}

	data["status"] = "ready"
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// pingEndpoints returns "ok" or the error text per endpoint name.
func (srv *HTTPServer) pingEndpoints(ctx context.Context) map[string]string {
	results := make([]string, len(srv.endpoints))

	var g errgroup.Group
	for i, ep := range srv.endpoints {
		g.Go(func() error {
			if err := ep.Ping(ctx); err != nil {
				srv.l.Warnf(ctx, "internal.httpserver.readyCheck: %s: %v", ep.Name(), err)
				results[i] = err.Error()
				return nil
			}
			results[i] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	checks := make(map[string]string, len(srv.endpoints))
	for i, ep := range srv.endpoints {
		checks[ep.Name()] = results[i]
	}
	return checks
}

