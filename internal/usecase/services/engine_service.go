package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/models"
	"github.com/api-sage/txn-dispute-engine/internal/commons"
	"github.com/api-sage/txn-dispute-engine/internal/domain"
	"github.com/api-sage/txn-dispute-engine/internal/engine"
	"github.com/api-sage/txn-dispute-engine/internal/logger"
)

// EngineService owns a long-lived processor behind the HTTP surface.
// Every apply happens under the mutex, so the reducer is never entered
// concurrently and transactions land in arrival order.
type EngineService struct {
	mu       sync.Mutex
	recorder *runRecorder
	proc     *engine.Processor
	archive  ArchiveRepository
}

// NewEngineService creates a live engine. A nil archive disables batch
// archival.
func NewEngineService(archive ArchiveRepository) *EngineService {
	recorder := &runRecorder{}
	return &EngineService{
		recorder: recorder,
		proc:     engine.NewProcessor(recorder),
		archive:  archive,
	}
}

// SubmitTransactions applies a batch in request order and reports the
// per-transaction outcome. Rejections are outcomes, not service errors;
// the call fails only on invalid request shape.
func (s *EngineService) SubmitTransactions(ctx context.Context, req models.SubmitTransactionsRequest) (commons.Response[models.SubmitTransactionsResponse], error) {
	logger.Info("engine service transaction batch received", logger.Fields{
		"count": len(req.Transactions),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SubmitTransactionsResponse]("validation failed", err.Error()), err
	}

	txs := make([]domain.Transaction, 0, len(req.Transactions))
	for i, row := range req.Transactions {
		tx, err := toTransaction(row)
		if err != nil {
			err = fmt.Errorf("transactions[%d]: %w", i, err)
			return commons.ErrorResponse[models.SubmitTransactionsResponse]("validation failed", err.Error()), err
		}
		txs = append(txs, tx)
	}

	response := models.SubmitTransactionsResponse{
		Results: make([]models.TransactionResult, 0, len(txs)),
	}

	s.mu.Lock()
	rejectionsBefore := len(s.recorder.rejections)
	for _, tx := range txs {
		result := models.TransactionResult{
			Type:     tx.Kind.String(),
			Client:   uint16(tx.Client),
			Tx:       uint32(tx.Tx),
			Accepted: true,
		}
		if err := s.proc.Apply(tx); err != nil {
			result.Accepted = false
			result.Reason = err.Error()
			response.Rejected++
		} else {
			response.Accepted++
		}
		response.Processed++
		response.Results = append(response.Results, result)
	}
	snapshot := s.proc.Snapshot()
	batchRejections := append([]domain.RejectedTransaction(nil), s.recorder.rejections[rejectionsBefore:]...)
	s.mu.Unlock()

	if s.archive != nil {
		run := domain.RunRecord{
			ID:         uuid.NewString(),
			Processed:  response.Processed,
			Accepted:   response.Accepted,
			Rejected:   response.Rejected,
			Accounts:   snapshot,
			Rejections: batchRejections,
		}
		if err := s.archive.SaveRun(ctx, run); err != nil {
			logger.Error("engine service failed to archive batch", err, logger.Fields{
				"runId": run.ID,
			})
		}
	}

	return commons.SuccessResponse("transactions processed", response), nil
}

// GetAccounts returns a snapshot of every account ever referenced.
func (s *EngineService) GetAccounts(_ context.Context) (commons.Response[models.AccountListResponse], error) {
	s.mu.Lock()
	snapshot := s.proc.Snapshot()
	s.mu.Unlock()

	accounts := make([]models.AccountResponse, 0, len(snapshot))
	for _, account := range snapshot {
		accounts = append(accounts, toAccountResponse(account))
	}

	return commons.SuccessResponse("accounts retrieved", models.AccountListResponse{Accounts: accounts}), nil
}

// GetAccount returns the snapshot of one client.
func (s *EngineService) GetAccount(_ context.Context, client string) (commons.Response[models.AccountResponse], error) {
	id, err := strconv.ParseUint(strings.TrimSpace(client), 10, 16)
	if err != nil {
		err = fmt.Errorf("client must be an unsigned 16-bit integer")
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	s.mu.Lock()
	snapshot, ok := s.proc.Account(domain.ClientID(id))
	s.mu.Unlock()

	if !ok {
		return commons.ErrorResponse[models.AccountResponse]("account not found"), domain.ErrNotFound
	}

	return commons.SuccessResponse("account retrieved", toAccountResponse(snapshot)), nil
}

func toTransaction(row models.TransactionRequest) (domain.Transaction, error) {
	client := domain.ClientID(row.Client)
	tx := domain.TxID(row.Tx)

	kind := strings.ToLower(strings.TrimSpace(row.Type))
	switch kind {
	case "deposit", "withdrawal":
		amount, err := domain.ParseAmount(row.Amount)
		if err != nil {
			return domain.Transaction{}, err
		}
		if kind == "deposit" {
			return domain.Deposit(client, tx, amount), nil
		}
		return domain.Withdrawal(client, tx, amount), nil
	case "dispute":
		return domain.Dispute(client, tx), nil
	case "resolve":
		return domain.Resolve(client, tx), nil
	case "chargeback":
		return domain.Chargeback(client, tx), nil
	default:
		return domain.Transaction{}, fmt.Errorf("unrecognized transaction type %q", row.Type)
	}
}

func toAccountResponse(account domain.AccountSnapshot) models.AccountResponse {
	return models.AccountResponse{
		Client:    uint16(account.Client),
		Available: account.Available.String(),
		Held:      account.Held.String(),
		Total:     account.Total.String(),
		Locked:    account.Frozen,
	}
}
