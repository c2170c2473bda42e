package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	r := gin.New()
	r.GET("/", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:4567"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := do(); code != http.StatusOK {
			t.Fatalf("request %d status = %d; want 200", i+1, code)
		}
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("over-budget request status = %d; want 429", code)
	}
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	r := gin.New()
	r.GET("/", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("203.0.113.1:1000"); code != http.StatusOK {
		t.Fatalf("first ip status = %d; want 200", code)
	}
	if code := do("203.0.113.1:1000"); code != http.StatusTooManyRequests {
		t.Fatalf("first ip second request status = %d; want 429", code)
	}
	// A different client still has its own budget.
	if code := do("203.0.113.2:1000"); code != http.StatusOK {
		t.Fatalf("second ip status = %d; want 200", code)
	}
}
