package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"decision-router/internal/decision"
	"decision-router/internal/router"
	"decision-router/pkg/datemath"
	"decision-router/pkg/log"
	"decision-router/pkg/mcp"
	"decision-router/pkg/metrics"
)

const tracerName = "decision-router/internal/decision/usecase"

// DefaultCallTimeout bounds a single downstream call when none is configured.
const DefaultCallTimeout = 30 * time.Second

// Endpoints are the three downstream MCP services.
type Endpoints struct {
	Health       mcp.IMCP
	Productivity mcp.IMCP
	Cognitive    mcp.IMCP
}

// implUseCase is the private implementation of decision.UseCase.
type implUseCase struct {
	l           log.Logger
	classifier  router.Classifier
	endpoints   Endpoints
	calendar    *datemath.Calendar
	callTimeout time.Duration
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

var _ decision.UseCase = (*implUseCase)(nil)

// New creates a new decision UseCase implementation. metrics may be nil.
func New(l log.Logger, classifier router.Classifier, endpoints Endpoints, calendar *datemath.Calendar, callTimeout time.Duration, m *metrics.Metrics) *implUseCase {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &implUseCase{
		l:           l,
		classifier:  classifier,
		endpoints:   endpoints,
		calendar:    calendar,
		callTimeout: callTimeout,
		metrics:     m,
		tracer:      otel.Tracer(tracerName),
	}
}
