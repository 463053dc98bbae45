package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDecision(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveDecision("health", OutcomeSuccess)
	m.ObserveDecision("health", OutcomeSuccess)
	m.ObserveDecision("summary", OutcomeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DecisionsTotal.WithLabelValues("health", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DecisionsTotal.WithLabelValues("summary", OutcomeError)))
}

func TestObserveDownstream(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveDownstream("cognitive", "add_data", OutcomeSuccess, 20*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DownstreamCalls.WithLabelValues("cognitive", "add_data", OutcomeSuccess)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DownstreamDuration))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveDecision("health", OutcomeSuccess)
		m.ObserveDownstream("health", "health_signal", OutcomeError, time.Second)
	})
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
