package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/fraudguard/internal/api/dto"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
)

type TransactionHandler struct {
	service   transaction.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewTransactionHandler(service transaction.Service, log *logger.Logger, val *validator.Validator) *TransactionHandler {
	return &TransactionHandler{service: service, logger: log, validator: val}
}

// List returns transactions matching the search and risk filter
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param search query string false "Case-insensitive substring of id, sender or receiver"
// @Param risk query string false "Risk filter: all, high, medium, low"
// @Success 200 {object} utils.SuccessResponse{data=utils.ListResponse{items=[]transaction.Transaction}} "Matching transactions"
// @Failure 400 {object} utils.ErrorResponse "Invalid filter"
// @Router /transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	req := dto.RecordListQuery{
		Search: r.URL.Query().Get("search"),
		Risk:   r.URL.Query().Get("risk"),
	}
	if !validate(w, h.validator, req) {
		return
	}

	txs, err := h.service.List(r.Context(), riskQuery(req.Search, req.Risk))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteList(w, txs, len(txs))
}

// Get returns a single transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} utils.SuccessResponse{data=transaction.Transaction} "Transaction details"
// @Failure 404 {object} utils.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, tx)
}

// GetSummary returns transaction aggregates
// @Summary Get transaction summary
// @Tags Transactions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=transaction.Summary} "Transaction figures"
// @Router /transactions/summary [get]
func (h *TransactionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, s)
}
