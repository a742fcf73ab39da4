package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"chorechum/internal/model"
	"chorechum/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})...)
	return r
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{})
	r := newTestRouter(mw, mw.Auth())

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "blank header", header: "   ", status: http.StatusUnauthorized},
		{name: "valid", header: " u-42 ", status: http.StatusOK, body: "u-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{})
	r := newTestRouter(mw, mw.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("request id = %q, want abc", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("generated request id = %q, want a uuid", got)
	}
}

func TestRateLimitPerUser(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{PerMinute: 1, Burst: 2})
	r := newTestRouter(mw, mw.Auth(), mw.RateLimit())

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("alice"); code != http.StatusOK {
			t.Fatalf("request %d for alice = %d, want 200", i+1, code)
		}
	}
	if code := do("alice"); code != http.StatusTooManyRequests {
		t.Errorf("third request for alice = %d, want 429", code)
	}
	if code := do("bob"); code != http.StatusOK {
		t.Errorf("bob = %d, want 200", code)
	}
}

func TestRateLimiterConcurrentFirstUse(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{PerMinute: 1, Burst: 1})

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("user:alice") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1", got)
	}
}

func TestRateLimiterActiveKeyKeepsBucket(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{PerMinute: 1, Burst: 1, TTL: 100 * time.Millisecond})

	if !rl.Allow("user:alice") {
		t.Fatal("first request should pass")
	}
	// Keep the key busy for well past the TTL; the drained bucket must stay.
	for i := 0; i < 8; i++ {
		time.Sleep(30 * time.Millisecond)
		if rl.Allow("user:alice") {
			t.Fatalf("request %d passed on a drained bucket", i+2)
		}
	}
}
