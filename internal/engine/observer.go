package engine

import "github.com/api-sage/txn-dispute-engine/internal/domain"

// Observer receives the outcome of every transaction the processor
// applies. A dispute that drives an available balance negative is
// reported through DebtIncurred in addition to Accepted; it is a
// notable event, not a rejection.
type Observer interface {
	Accepted(tx domain.Transaction)
	Rejected(tx domain.Transaction, reason error)
	DebtIncurred(tx domain.Transaction, available domain.Amount)
}

// NopObserver discards all outcomes.
type NopObserver struct{}

func (NopObserver) Accepted(domain.Transaction)                    {}
func (NopObserver) Rejected(domain.Transaction, error)             {}
func (NopObserver) DebtIncurred(domain.Transaction, domain.Amount) {}
