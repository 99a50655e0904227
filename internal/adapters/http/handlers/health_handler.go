package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// readiness is the body of GET /health/ready.
type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]struct{}
}

// NewHealthHandler creates a HealthHandler. A failing check named in
// optional turns readiness "degraded" but keeps it 200: the board can still
// be reordered while the remote project API is down.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, optional: make(map[string]struct{}, len(optional))}
	for _, name := range optional {
		h.optional[name] = struct{}{}
	}
	return h
}

// Liveness answers 200 as long as the process serves HTTP.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness runs every registered check. Any failing required check makes
// it answer 503 "not_ready".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body := readiness{Status: "ready", Checks: map[string]string{}}
	var required, optional int

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			body.Checks[name] = "ok"
			continue
		}
		body.Checks[name] = err.Error()
		if _, soft := h.optional[name]; soft {
			optional++
		} else {
			required++
		}
	}

	code := http.StatusOK
	switch {
	case required > 0:
		body.Status = "not_ready"
		code = http.StatusServiceUnavailable
	case optional > 0:
		body.Status = "degraded"
	}
	writeJSON(w, code, body)
}
