package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/fraudguard/internal/domain/dashboard"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
)

type DashboardHandler struct {
	service dashboard.Service
	logger  *logger.Logger
}

func NewDashboardHandler(service dashboard.Service, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: log}
}

// Get returns the dashboard overview
// @Summary Get dashboard overview
// @Description Chart datasets plus live alert, transaction and user summaries
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dashboard.Overview} "Overview"
// @Router /dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Overview(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to build dashboard overview")
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, o)
}
