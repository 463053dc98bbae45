package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"decision-router/config"
	_ "decision-router/docs" // Swagger docs
	"decision-router/internal/decision"
	decisionUC "decision-router/internal/decision/usecase"
	"decision-router/internal/httpserver"
	"decision-router/internal/mcpserver"
	"decision-router/internal/middleware"
	"decision-router/internal/router"
	"decision-router/pkg/datemath"
	"decision-router/pkg/log"
	"decision-router/pkg/mcp"
	"decision-router/pkg/metrics"
)

// @title       Decision Router API
// @description Routes free-text requests to the health, productivity and cognitive MCP services, or aggregates all three.
// @version     1
// @host        localhost:8005
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Decision Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	calendar, err := datemath.NewCalendar(cfg.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone: %v", err)
	}
	logger.Infof(ctx, "Timezone: %s", calendar.Location())

	// 4. Downstream MCP clients
	clientOpts := []mcp.Option{
		mcp.WithTimeout(cfg.MCP.CallTimeout),
	}
	healthMCP, err := mcp.New(decision.ServiceHealth, cfg.MCP.Health.URL, clientOpts...)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create health MCP client: %v", err)
	}
	productivityMCP, err := mcp.New(decision.ServiceProductivity, cfg.MCP.Productivity.URL, clientOpts...)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create productivity MCP client: %v", err)
	}
	cognitiveMCP, err := mcp.New(decision.ServiceCognitive, cfg.MCP.Cognitive.URL, clientOpts...)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create cognitive MCP client: %v", err)
	}
	logger.Infof(ctx, "Health MCP: %s", healthMCP.URL())
	logger.Infof(ctx, "Productivity MCP: %s", productivityMCP.URL())
	logger.Infof(ctx, "Cognitive MCP: %s", cognitiveMCP.URL())
	defer func() {
		for _, c := range []*mcp.Client{healthMCP, productivityMCP, cognitiveMCP} {
			if err := c.Close(); err != nil {
				logger.Warnf(ctx, "Failed to close %s MCP session: %v", c.Name(), err)
			}
		}
	}()

	// 5. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// 6. Decision use case
	uc := decisionUC.New(logger, router.New(), decisionUC.Endpoints{
		Health:       healthMCP,
		Productivity: productivityMCP,
		Cognitive:    cognitiveMCP,
	}, calendar, cfg.MCP.CallTimeout, m)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DecisionUseCase: uc,
		MCPServerInfo: mcpserver.Info{
			Name:         mcpserver.DefaultServerName,
			Version:      httpserver.HealthVersion,
			Instructions: "Call decide with user_input describing what you need; pass optional data for the matched service.",
		},
		MCPSessionTTL: cfg.MCPServer.SessionTTL,
		Endpoints:     []mcp.IMCP{healthMCP, productivityMCP, cognitiveMCP},
		Metrics:       m,
		Gatherer:      registry,
		RateLimit: middleware.RateLimitConfig{
			Enabled: cfg.RateLimit.Enabled,
			PerMin:  cfg.RateLimit.PerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
