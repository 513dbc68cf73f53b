package handlers

import (
	"context"
	"net/http"
	"time"

	"RECIPEBOOK_BACK-END/internal/dto"
	"RECIPEBOOK_BACK-END/internal/logger"
	"RECIPEBOOK_BACK-END/internal/utils"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Test confirms the API is up
// @Summary API liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "API is working"
// @Router /api/test [get]
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	utils.WriteTextResponse(w, http.StatusOK, "API is working")
}

// HealthCheck handles basic health check (no document store)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes document store connectivity)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("readiness probe failed")
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "degraded",
			Checks: map[string]string{"store": "unreachable"},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status: "ready",
		Checks: map[string]string{"store": "ok"},
	})
}
