package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	alerts alert.Repository
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(alerts alert.Repository, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		alerts: alerts,
		logger: log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Check that the alert store is loaded and answering
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.alerts == nil {
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Alert store not loaded")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	n, err := h.alerts.Count(ctx)
	if err != nil {
		h.logger.ErrorWithErr(err, "Alert store check failed")
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Alert store unavailable")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
		"alerts": n,
	})
}
