package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	rl := NewRateLimitMiddleware(0.001, 2)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:3333"), "same host, different port")
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1111"))
}

func TestRateLimitMiddleware_EvictIdle(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	defer rl.Stop()

	rl.getLimiter("a")
	rl.getLimiter("b")
	rl.mu.Lock()
	rl.limiters["a"].lastSeen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.evictIdle(time.Now())

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "a")
	assert.Contains(t, rl.limiters, "b")
}
