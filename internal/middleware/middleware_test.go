package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decision-router/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := newRateLimiter(20) // burst 2

	require.NoError(t, rl.Allow("10.0.0.1"))
	require.NoError(t, rl.Allow("10.0.0.1"))
	assert.Error(t, rl.Allow("10.0.0.1"))

	assert.NoError(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_MinimumBurst(t *testing.T) {
	rl := newRateLimiter(5)

	assert.Equal(t, 1, rl.burst)
	assert.NoError(t, rl.Allow("k"))
}

func TestRateLimit_Middleware(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{Enabled: true, PerMin: 10})

	r := gin.New()
	r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{Enabled: false, PerMin: 1})

	r := gin.New()
	r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/x", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}
