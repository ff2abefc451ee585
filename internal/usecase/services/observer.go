package services

import (
	"github.com/api-sage/txn-dispute-engine/internal/domain"
	"github.com/api-sage/txn-dispute-engine/internal/logger"
)

// runRecorder is the engine observer shared by both services: it logs
// every outcome and keeps the counters and rejection audit used for the
// run archive.
type runRecorder struct {
	processed  int
	accepted   int
	rejections []domain.RejectedTransaction
}

func (r *runRecorder) Accepted(tx domain.Transaction) {
	r.processed++
	r.accepted++
	logger.Info("transaction applied", txFields(tx))
}

func (r *runRecorder) Rejected(tx domain.Transaction, reason error) {
	r.processed++
	r.rejections = append(r.rejections, domain.RejectedTransaction{
		Kind:   tx.Kind,
		Client: tx.Client,
		Tx:     tx.Tx,
		Reason: reason.Error(),
	})

	fields := txFields(tx)
	fields["reason"] = reason.Error()
	logger.Info("transaction skipped", fields)
}

// DebtIncurred marks the debt condition: a dispute drove the available
// balance negative because the funds were already withdrawn. Accepted,
// not an error, but it must stand out to whoever reads the logs.
func (r *runRecorder) DebtIncurred(tx domain.Transaction, available domain.Amount) {
	logger.Warn("dispute caused negative available balance", logger.Fields{
		"client":    tx.Client,
		"tx":        tx.Tx,
		"available": available.String(),
	})
}

func (r *runRecorder) rejected() int {
	return r.processed - r.accepted
}

func txFields(tx domain.Transaction) logger.Fields {
	fields := logger.Fields{
		"type":   tx.Kind.String(),
		"client": tx.Client,
		"tx":     tx.Tx,
	}
	if tx.Kind == domain.TxDeposit || tx.Kind == domain.TxWithdrawal {
		fields["amount"] = tx.Amount.String()
	}
	return fields
}
