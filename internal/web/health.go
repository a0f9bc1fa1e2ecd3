package web

import (
	"context"
	"net/http"
	"time"

	"bookweb/internal/httpx"
)

// Pinger checks that the books API is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	upstream Pinger
	timeout  time.Duration
}

func NewHealthHandler(upstream Pinger) *HealthHandler {
	return &HealthHandler{upstream: upstream, timeout: 2 * time.Second}
}

// Live handles GET /healthz
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, map[string]string{"status": "ok"})
}

// Ready handles GET /readyz
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.upstream.Ping(ctx); err != nil {
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "books API not ready: "+err.Error())
		return
	}
	httpx.JSONSuccess(w, r, map[string]string{"status": "ready"})
}
