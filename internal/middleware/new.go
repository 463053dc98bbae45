package middleware

import (
	"decision-router/pkg/log"
)

// RateLimitConfig holds per-client rate limit settings.
type RateLimitConfig struct {
	Enabled bool
	PerMin  int // max requests per minute per client IP
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled && rl.PerMin > 0 {
		mw.limiter = newRateLimiter(rl.PerMin)
	}
	return mw
}
