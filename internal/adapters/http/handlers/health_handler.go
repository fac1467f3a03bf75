package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-collector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// HealthHandler serves the liveness and readiness probes. Readiness covers
// the draft slot and the collector's circuit breaker.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports on the checkers in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It answers while the process serves.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthAlive})
}

// Readiness handles GET /health/ready: 200 when every dependency passes,
// otherwise 503 naming the failures.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadiness(h.registry.CheckAll(r.Context()))
	if ready {
		respondJSON(w, r, http.StatusOK, resp)
		return
	}

	logging.FromContext(r.Context()).WarnContext(r.Context(), "not ready",
		logging.Operation("handlers.Readiness"),
		slog.Any("checks", resp.Checks),
	)
	respondJSON(w, r, http.StatusServiceUnavailable, resp)
}
