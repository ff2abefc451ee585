package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/models"
	"github.com/api-sage/txn-dispute-engine/internal/commons"
)

type TransactionService interface {
	SubmitTransactions(ctx context.Context, req models.SubmitTransactionsRequest) (commons.Response[models.SubmitTransactionsResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.submitTransactions)
	if authMiddleware != nil {
		handler = authMiddleware(handler).ServeHTTP
	}
	mux.Handle("/transactions", http.HandlerFunc(handler))
}

func (c *TransactionController) submitTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.SubmitTransactionsResponse]("method not allowed"))
		return
	}

	var req models.SubmitTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.SubmitTransactionsResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.SubmitTransactions(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
