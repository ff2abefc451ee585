package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/models"
	"github.com/api-sage/txn-dispute-engine/internal/commons"
)

type transactionServiceStub struct{}

func (transactionServiceStub) SubmitTransactions(_ context.Context, req models.SubmitTransactionsRequest) (commons.Response[models.SubmitTransactionsResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SubmitTransactionsResponse]("validation failed", err.Error()), err
	}
	return commons.SuccessResponse("transactions processed", models.SubmitTransactionsResponse{
		Processed: len(req.Transactions),
		Accepted:  len(req.Transactions),
	}), nil
}

func newTransactionMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewTransactionController(transactionServiceStub{}).RegisterRoutes(mux, nil)
	return mux
}

func TestTransactionControllerSubmitsBatch(t *testing.T) {
	body := `{"transactions":[{"type":"deposit","client":1,"tx":1,"amount":"10.0"}]}`

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTransactionMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestTransactionControllerRejectsInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	newTransactionMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTransactionControllerRejectsInvalidBatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"transactions":[]}`))
	rr := httptest.NewRecorder()
	newTransactionMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTransactionControllerRejectsWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rr := httptest.NewRecorder()
	newTransactionMux().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
