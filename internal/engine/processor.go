package engine

import (
	"context"
	"fmt"

	"github.com/api-sage/txn-dispute-engine/internal/domain"
)

// Processor applies transactions one at a time against the deposit
// ledger, withdrawal set and account table. It owns no balance state of
// its own; rejections leave all three stores untouched and never stop a
// run. The processor is not safe for concurrent use: callers funnel
// every transaction through a single goroutine or serialize Apply.
type Processor struct {
	ledger      *DepositLedger
	withdrawals *WithdrawalSet
	accounts    *AccountTable
	observer    Observer
}

// NewProcessor creates a processor with fresh, empty stores. A nil
// observer disables outcome reporting.
func NewProcessor(observer Observer) *Processor {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Processor{
		ledger:      NewDepositLedger(),
		withdrawals: NewWithdrawalSet(),
		accounts:    NewAccountTable(),
		observer:    observer,
	}
}

// Run drains the transaction channel until it is closed, applying each
// transaction in arrival order. Rejections are reported through the
// observer and do not stop the run; cancelling the context aborts it.
func (p *Processor) Run(ctx context.Context, txs <-chan domain.Transaction) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tx, ok := <-txs:
			if !ok {
				return nil
			}
			_ = p.Apply(tx)
		}
	}
}

// Apply validates and applies a single transaction. The first failing
// check determines the returned rejection reason; a rejected transaction
// has no effect on any store. The outcome is also reported through the
// observer.
func (p *Processor) Apply(tx domain.Transaction) error {
	var err error
	switch tx.Kind {
	case domain.TxDeposit:
		err = p.applyDeposit(tx)
	case domain.TxWithdrawal:
		err = p.applyWithdrawal(tx)
	case domain.TxDispute:
		err = p.applyDispute(tx)
	case domain.TxResolve:
		err = p.applyResolve(tx)
	case domain.TxChargeback:
		err = p.applyChargeback(tx)
	default:
		err = fmt.Errorf("unhandled transaction kind %d", tx.Kind)
	}

	if err != nil {
		p.observer.Rejected(tx, err)
		return err
	}

	p.observer.Accepted(tx)
	return nil
}

// Snapshot exports the current state of every account ever referenced.
func (p *Processor) Snapshot() []domain.AccountSnapshot {
	return p.accounts.Snapshot()
}

// Account returns the snapshot of a single client, if it exists.
func (p *Processor) Account(client domain.ClientID) (domain.AccountSnapshot, bool) {
	account, ok := p.accounts.Get(client)
	if !ok {
		return domain.AccountSnapshot{}, false
	}
	return domain.AccountSnapshot{
		Client:    client,
		Available: account.Available,
		Held:      account.Held,
		Total:     account.Total(),
		Frozen:    account.Frozen,
	}, true
}

func (p *Processor) applyDeposit(tx domain.Transaction) error {
	account := p.accounts.GetOrCreate(tx.Client)

	if account.Frozen {
		return domain.ErrFrozenAccount
	}
	if p.ledger.Contains(tx.Tx) || p.withdrawals.Contains(tx.Tx) {
		return domain.ErrDuplicateID
	}
	if !tx.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	available, err := account.Available.Add(tx.Amount)
	if err != nil {
		return err
	}
	// The derived total must stay representable too.
	if _, err := available.Add(account.Held); err != nil {
		return err
	}

	if err := p.ledger.Insert(tx.Tx, tx.Client, tx.Amount, p.withdrawals); err != nil {
		return err
	}
	account.Available = available

	return nil
}

func (p *Processor) applyWithdrawal(tx domain.Transaction) error {
	account := p.accounts.GetOrCreate(tx.Client)

	if account.Frozen {
		return domain.ErrFrozenAccount
	}
	if p.ledger.Contains(tx.Tx) || p.withdrawals.Contains(tx.Tx) {
		return domain.ErrDuplicateID
	}
	if !tx.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if account.Available < tx.Amount {
		return domain.ErrInsufficientFunds
	}

	if err := p.withdrawals.Insert(tx.Tx, p.ledger); err != nil {
		return err
	}
	account.Available -= tx.Amount

	return nil
}

// applyDispute moves the disputed deposit's funds from available to
// held. Available may go negative if the funds were already withdrawn;
// that is accepted and reported as a debt condition.
func (p *Processor) applyDispute(tx domain.Transaction) error {
	record, err := p.ledger.Get(tx.Tx)
	if err != nil {
		return err
	}
	if record.Client != tx.Client {
		return domain.ErrClientMismatch
	}
	if record.State != domain.DepositOk {
		return domain.ErrInvalidState
	}

	account := p.accounts.GetOrCreate(tx.Client)

	available, err := account.Available.Sub(record.Amount)
	if err != nil {
		return err
	}
	held, err := account.Held.Add(record.Amount)
	if err != nil {
		return err
	}

	if err := p.ledger.SetState(tx.Tx, domain.DepositDisputed); err != nil {
		return err
	}
	account.Available = available
	account.Held = held

	if account.Available.IsNegative() {
		p.observer.DebtIncurred(tx, account.Available)
	}

	return nil
}

func (p *Processor) applyResolve(tx domain.Transaction) error {
	record, err := p.ledger.Get(tx.Tx)
	if err != nil {
		return err
	}
	if record.Client != tx.Client {
		return domain.ErrClientMismatch
	}
	if record.State != domain.DepositDisputed {
		return domain.ErrInvalidState
	}

	account := p.accounts.GetOrCreate(tx.Client)

	held, err := account.Held.Sub(record.Amount)
	if err != nil {
		return err
	}
	available, err := account.Available.Add(record.Amount)
	if err != nil {
		return err
	}

	if err := p.ledger.SetState(tx.Tx, domain.DepositOk); err != nil {
		return err
	}
	account.Held = held
	account.Available = available

	return nil
}

// applyChargeback removes the held funds, freezes the account and
// evicts the deposit record. Eviction is terminal: the ID becomes
// unresolvable to any later dispute, resolve or chargeback.
func (p *Processor) applyChargeback(tx domain.Transaction) error {
	record, err := p.ledger.Get(tx.Tx)
	if err != nil {
		return err
	}
	if record.Client != tx.Client {
		return domain.ErrClientMismatch
	}
	if record.State != domain.DepositDisputed {
		return domain.ErrInvalidState
	}

	account := p.accounts.GetOrCreate(tx.Client)

	held, err := account.Held.Sub(record.Amount)
	if err != nil {
		return err
	}

	account.Held = held
	account.Frozen = true
	p.ledger.Evict(tx.Tx)

	return nil
}
