package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/txn-dispute-engine/internal/domain"
)

// ArchiveRepository persists completed run summaries: the final account
// snapshot and the audit trail of rejected transactions. It is a
// write-only sink; the in-memory engine remains the source of truth.
type ArchiveRepository struct {
	db *sql.DB
}

func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) SaveRun(ctx context.Context, run domain.RunRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}

	const insertRun = `
INSERT INTO runs (id, processed, accepted, rejected)
VALUES ($1, $2, $3, $4)`

	if _, err := tx.ExecContext(ctx, insertRun, run.ID, run.Processed, run.Accepted, run.Rejected); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	const insertAccount = `
INSERT INTO run_accounts (run_id, client, available, held, total, frozen)
VALUES ($1, $2, $3, $4, $5, $6)`

	for _, account := range run.Accounts {
		if _, err := tx.ExecContext(
			ctx,
			insertAccount,
			run.ID,
			int64(account.Client),
			account.Available.String(),
			account.Held.String(),
			account.Total.String(),
			account.Frozen,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert run account %d: %w", account.Client, err)
		}
	}

	const insertRejection = `
INSERT INTO run_rejections (run_id, kind, client, tx, reason)
VALUES ($1, $2, $3, $4, $5)`

	for _, rejection := range run.Rejections {
		if _, err := tx.ExecContext(
			ctx,
			insertRejection,
			run.ID,
			rejection.Kind.String(),
			int64(rejection.Client),
			int64(rejection.Tx),
			rejection.Reason,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert run rejection tx %d: %w", rejection.Tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}

	return nil
}
