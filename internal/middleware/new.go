package middleware

import (
	"chorechum/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l       log.Logger
	limiter *RateLimiter
}

func New(l log.Logger, cfg RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: NewRateLimiter(cfg),
	}
}
