package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "decision_router"

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	DecisionsTotal     *prometheus.CounterVec
	DownstreamCalls    *prometheus.CounterVec
	DownstreamDuration *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Total number of decide requests by classified domain and outcome",
			},
			[]string{"domain", "outcome"},
		),
		DownstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "downstream_calls_total",
				Help:      "Total number of MCP tool calls by service, tool and outcome",
			},
			[]string{"service", "tool", "outcome"},
		),
		DownstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "downstream_call_duration_seconds",
				Help:      "Duration of MCP tool calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "tool"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// ObserveDecision counts one decide request.
func (m *Metrics) ObserveDecision(domain, outcome string) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(domain, outcome).Inc()
}

// ObserveDownstream records one MCP tool call.
func (m *Metrics) ObserveDownstream(service, tool, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DownstreamCalls.WithLabelValues(service, tool, outcome).Inc()
	m.DownstreamDuration.WithLabelValues(service, tool).Observe(elapsed.Seconds())
}

// GinMiddleware records request counts and latency per route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method

		m.HTTPRequests.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}
