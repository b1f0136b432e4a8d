package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func serveFrom(t *testing.T, h echo.HandlerFunc, ip string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestRateLimit_WithinBurst(t *testing.T) {
	h := RateLimit(RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5})(okHandler)

	for i := 0; i < 5; i++ {
		rec, err := serveFrom(t, h, "10.0.0.1")
		if err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
		if got := rec.Header().Get("X-RateLimit-Limit"); got != "10" {
			t.Errorf("request %d: expected X-RateLimit-Limit '10', got %q", i+1, got)
		}
	}
}

func TestRateLimit_ExceedsBurst(t *testing.T) {
	h := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})(okHandler)

	for i := 0; i < 2; i++ {
		if _, err := serveFrom(t, h, "10.0.0.1"); err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
	}

	rec, err := serveFrom(t, h, "10.0.0.1")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
	retry, convErr := strconv.Atoi(rec.Header().Get("Retry-After"))
	if convErr != nil || retry < 1 {
		t.Errorf("unexpected Retry-After %q", rec.Header().Get("Retry-After"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("expected X-RateLimit-Remaining 0")
	}
}

func TestRateLimit_PerClientIsolation(t *testing.T) {
	h := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})(okHandler)

	if _, err := serveFrom(t, h, "10.0.0.1"); err != nil {
		t.Fatalf("first client: %v", err)
	}
	if _, err := serveFrom(t, h, "10.0.0.1"); err == nil {
		t.Fatal("first client: expected rate limit")
	}
	if _, err := serveFrom(t, h, "10.0.0.2"); err != nil {
		t.Fatalf("second client should have its own bucket: %v", err)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(RateLimitConfig{RequestsPerSecond: 0, BurstSize: 0})(okHandler)
	for i := 0; i < 10; i++ {
		if _, err := serveFrom(t, h, "10.0.0.1"); err != nil {
			t.Fatalf("request %d: expected no limit, got %v", i+1, err)
		}
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newTokenBucket(2, 1, start)

	if ok, _ := b.take(start); !ok {
		t.Fatal("expected first token")
	}
	if ok, retry := b.take(start); ok || retry != 1 {
		t.Fatalf("expected refusal with retry 1, got ok=%v retry=%d", ok, retry)
	}
	if ok, _ := b.take(start.Add(600 * time.Millisecond)); !ok {
		t.Error("expected token after refill")
	}
}

func TestTokenBucket_ZeroRate(t *testing.T) {
	now := time.Now()
	b := newTokenBucket(0, 1, now)
	b.take(now)
	if ok, retry := b.take(now); ok || retry != 1 {
		t.Errorf("expected refusal with retry 1, got ok=%v retry=%d", ok, retry)
	}
}

func TestLimiter_EvictsIdleBuckets(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1, IdleTTL: time.Minute})

	l.bucket("a", now)
	l.bucket("b", now.Add(30*time.Second))
	if l.size() != 2 {
		t.Fatalf("expected 2 buckets, got %d", l.size())
	}

	l.bucket("c", now.Add(2*time.Minute))
	if l.size() != 1 {
		t.Errorf("expected idle buckets evicted, %d remain", l.size())
	}
}
