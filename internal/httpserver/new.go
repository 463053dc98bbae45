package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"decision-router/internal/decision"
	"decision-router/internal/mcpserver"
	"decision-router/internal/middleware"
	"decision-router/pkg/log"
	"decision-router/pkg/mcp"
	"decision-router/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Decision domain
	decisionUC decision.UseCase
	mcpServer  *mcpserver.Server

	// Readiness probes
	endpoints []mcp.IMCP

	// Observability
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	middleware middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	DecisionUseCase decision.UseCase
	MCPServerInfo   mcpserver.Info
	MCPSessionTTL   time.Duration

	// Endpoints are pinged by /ready.
	Endpoints []mcp.IMCP

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	RateLimit middleware.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		decisionUC:  cfg.DecisionUseCase,
		mcpServer:   mcpserver.New(logger, cfg.MCPServerInfo, cfg.MCPSessionTTL),
		endpoints:   cfg.Endpoints,
		metrics:     cfg.Metrics,
		gatherer:    cfg.Gatherer,
		middleware:  middleware.New(logger, cfg.RateLimit),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.decisionUC == nil {
		return errors.New("decision use case is required")
	}
	return nil
}
