package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/fraudguard/internal/api/dto"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
)

type UserHandler struct {
	service   user.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewUserHandler(service user.Service, log *logger.Logger, val *validator.Validator) *UserHandler {
	return &UserHandler{service: service, logger: log, validator: val}
}

// List returns user profiles matching the search and risk filter
// @Summary List users
// @Tags Users
// @Produce json
// @Param search query string false "Case-insensitive substring of email, name or id"
// @Param risk query string false "Risk filter: all, high, medium, low"
// @Success 200 {object} utils.SuccessResponse{data=utils.ListResponse{items=[]user.User}} "Matching users"
// @Failure 400 {object} utils.ErrorResponse "Invalid filter"
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	req := dto.RecordListQuery{
		Search: r.URL.Query().Get("search"),
		Risk:   r.URL.Query().Get("risk"),
	}
	if !validate(w, h.validator, req) {
		return
	}

	users, err := h.service.List(r.Context(), riskQuery(req.Search, req.Risk))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteList(w, users, len(users))
}

// Get returns a single user profile
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.SuccessResponse{data=user.User} "User profile"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, u)
}

// History returns a user's transaction trend
// @Summary Get user transaction history
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.SuccessResponse{data=utils.ListResponse{items=[]user.HistoryPoint}} "History samples"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /users/{id}/history [get]
func (h *UserHandler) History(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteList(w, points, len(points))
}

// GetSummary returns user aggregates
// @Summary Get user summary
// @Tags Users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=user.Summary} "User counts"
// @Router /users/summary [get]
func (h *UserHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, s)
}
