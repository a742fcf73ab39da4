package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"chorechum/internal/model"
	"chorechum/pkg/response"
)

// RateLimitConfig sizes the per-key token buckets.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
	MaxKeys   int
	TTL       time.Duration
}

// RateLimiter keeps one token bucket per key. Keys idle for longer than the
// TTL expire from an LRU so memory stays bounded.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 120
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(cfg.PerMinute/10, 1)
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 1000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxKeys, nil, cfg.TTL),
		rate:     rate.Limit(float64(cfg.PerMinute) / 60.0),
		burst:    cfg.Burst,
	}
}

// Allow reports whether key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// limiter returns the bucket for key, creating it on first use. Every call
// re-adds the entry so an active key never expires.
func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	return limiter
}

// RateLimit throttles per acting user, falling back to the client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := model.GetScopeFromContext(c.Request.Context()); ok {
			key = "user:" + sc.UserID
		}
		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
