package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/fraudguard/internal/api/dto"
	"github.com/pratik-mahalle/fraudguard/internal/api/middleware"
	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
)

type AlertHandler struct {
	service   alert.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAlertHandler(service alert.Service, log *logger.Logger, val *validator.Validator) *AlertHandler {
	return &AlertHandler{service: service, logger: log, validator: val}
}

// List returns alerts matching the filters in collection order
// @Summary List alerts
// @Description Filter alerts by free-text search (id, transaction id, user), risk level, status and severity
// @Tags Alerts
// @Produce json
// @Param search query string false "Case-insensitive substring of id, transactionId or userId"
// @Param risk query string false "Risk filter: all, high, medium, low"
// @Param status query string false "Filter by status"
// @Param severity query string false "Filter by severity"
// @Success 200 {object} utils.SuccessResponse{data=utils.ListResponse{items=[]alert.Alert}} "Matching alerts"
// @Failure 400 {object} utils.ErrorResponse "Invalid filter"
// @Router /alerts [get]
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dto.AlertListQuery{
		Search:   q.Get("search"),
		Risk:     q.Get("risk"),
		Status:   q.Get("status"),
		Severity: q.Get("severity"),
	}
	if !validate(w, h.validator, req) {
		return
	}

	alerts, err := h.service.List(r.Context(), alert.Filter{
		Query:    riskQuery(req.Search, req.Risk),
		Status:   alert.Status(req.Status),
		Severity: alert.Severity(req.Severity),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteList(w, alerts, len(alerts))
}

// Get returns a single alert by ID
// @Summary Get alert by ID
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} utils.SuccessResponse{data=alert.Alert} "Alert details"
// @Failure 404 {object} utils.ErrorResponse "Alert not found"
// @Router /alerts/{id} [get]
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, a)
}

// ApplyAction transitions an active alert
// @Summary Act on an alert
// @Description block and review move an active alert to under_review; resolve (or approve) moves it to resolved
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param request body dto.ActionRequest true "Action"
// @Success 200 {object} utils.SuccessResponse{data=alert.Alert} "Updated alert"
// @Failure 400 {object} utils.ErrorResponse "Unknown action"
// @Failure 404 {object} utils.ErrorResponse "Alert not found"
// @Failure 409 {object} utils.ErrorResponse "Alert is not active"
// @Router /alerts/{id}/actions [post]
func (h *AlertHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	middleware.AddLogField(r, "alert_id", id)

	var req dto.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if !validate(w, h.validator, req) {
		return
	}

	action, err := alert.ParseAction(req.Action)
	if err != nil {
		utils.WriteError(w, errors.InvalidInput("Unknown alert action", err))
		return
	}
	middleware.AddLogField(r, "action", action)

	a, err := h.service.ApplyAction(r.Context(), id, action)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, a)
}

// Partition returns alerts grouped by status
// @Summary Partition alerts by status
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=alert.Partition} "Active, under review and resolved alerts"
// @Router /alerts/partition [get]
func (h *AlertHandler) Partition(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Partition(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, p)
}

// GetSummary returns alert aggregates
// @Summary Get alert summary
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=alert.Summary} "Alert counts"
// @Router /alerts/summary [get]
func (h *AlertHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, s)
}

// Count returns the number of alerts with a severity and status
// @Summary Count alerts by severity and status
// @Tags Alerts
// @Produce json
// @Param severity query string true "Severity"
// @Param status query string true "Status"
// @Success 200 {object} utils.SuccessResponse{data=dto.AlertCountResponse} "Count"
// @Failure 400 {object} utils.ErrorResponse "Invalid severity or status"
// @Router /alerts/count [get]
func (h *AlertHandler) Count(w http.ResponseWriter, r *http.Request) {
	req := dto.AlertCountQuery{
		Severity: r.URL.Query().Get("severity"),
		Status:   r.URL.Query().Get("status"),
	}
	if !validate(w, h.validator, req) {
		return
	}

	n, err := h.service.CountBySeverityAndStatus(r.Context(), alert.Severity(req.Severity), alert.Status(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.AlertCountResponse{
		Severity: req.Severity,
		Status:   req.Status,
		Count:    n,
	})
}
