package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/models"
	"github.com/api-sage/txn-dispute-engine/internal/commons"
	"github.com/api-sage/txn-dispute-engine/internal/domain"
)

type AccountService interface {
	GetAccounts(ctx context.Context) (commons.Response[models.AccountListResponse], error)
	GetAccount(ctx context.Context, client string) (commons.Response[models.AccountResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	list := http.HandlerFunc(c.listAccounts)
	get := http.HandlerFunc(c.getAccount)
	if authMiddleware != nil {
		list = authMiddleware(list).ServeHTTP
		get = authMiddleware(get).ServeHTTP
	}
	mux.Handle("/accounts", http.HandlerFunc(list))
	mux.Handle("/accounts/", http.HandlerFunc(get))
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountListResponse]("method not allowed"))
		return
	}

	response, err := c.service.GetAccounts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountResponse]("method not allowed"))
		return
	}

	client := strings.TrimPrefix(r.URL.Path, "/accounts/")
	if client == "" || strings.Contains(client, "/") {
		writeJSON(w, http.StatusNotFound, commons.ErrorResponse[models.AccountResponse]("account not found"))
		return
	}

	response, err := c.service.GetAccount(r.Context(), client)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case response.Message == "validation failed":
			status = http.StatusBadRequest
		}
		writeJSON(w, status, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
