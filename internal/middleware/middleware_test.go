package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/gtd_bi/internal/ratelimit"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return r
}

func get(r *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := newEngine(RateLimitMiddleware(ratelimit.NewMemoryLimiter(ctx, 1, time.Minute)))

	if w := get(r, nil); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	if w := get(r, nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	r := newEngine(RateLimitMiddleware(failingLimiter{}))
	if w := get(r, nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"bi.example.com"}))

	w := get(r, http.Header{"Origin": {"https://bi.example.com:443"}})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://bi.example.com:443" {
		t.Errorf("allowed origin = %q", got)
	}

	w = get(r, http.Header{"Origin": {"https://evil.example.com"}})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow origin %q", got)
	}

	w = get(r, http.Header{"Referer": {"https://bi.example.com/dashboard"}})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://bi.example.com" {
		t.Errorf("referer origin = %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(CORSMiddleware(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	r := newEngine(LoggingMiddleware())
	w := get(r, nil)
	id := w.Header().Get("X-Request-Id")
	if len(id) != 8 {
		t.Fatalf("request id = %q", id)
	}
	if w.Body.String() != id {
		t.Errorf("context request id = %q, header = %q", w.Body.String(), id)
	}
}
