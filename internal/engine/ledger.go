package engine

import "github.com/api-sage/txn-dispute-engine/internal/domain"

// DepositLedger maps transaction IDs to deposit records for dispute
// tracking. Charged-back deposits are evicted; an evicted ID is
// indistinguishable from one that never existed.
type DepositLedger struct {
	records map[domain.TxID]domain.DepositRecord
}

func NewDepositLedger() *DepositLedger {
	return &DepositLedger{records: make(map[domain.TxID]domain.DepositRecord)}
}

// Insert stores a new deposit record. The ID must be unused by both
// deposits and withdrawals.
func (l *DepositLedger) Insert(id domain.TxID, client domain.ClientID, amount domain.Amount, withdrawals *WithdrawalSet) error {
	if l.Contains(id) || withdrawals.Contains(id) {
		return domain.ErrDuplicateID
	}
	l.records[id] = domain.NewDepositRecord(client, amount)
	return nil
}

// Get returns the live record for id, or ErrNotFound. Evicted IDs
// report ErrNotFound like any unknown ID.
func (l *DepositLedger) Get(id domain.TxID) (domain.DepositRecord, error) {
	record, ok := l.records[id]
	if !ok {
		return domain.DepositRecord{}, domain.ErrNotFound
	}
	return record, nil
}

// SetState mutates the lifecycle state of an existing record in place.
func (l *DepositLedger) SetState(id domain.TxID, state domain.DepositState) error {
	record, ok := l.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	record.State = state
	l.records[id] = record
	return nil
}

// Evict removes the record permanently. The ID can never again resolve
// for a dispute, resolve or chargeback.
func (l *DepositLedger) Evict(id domain.TxID) {
	delete(l.records, id)
}

func (l *DepositLedger) Contains(id domain.TxID) bool {
	_, ok := l.records[id]
	return ok
}

func (l *DepositLedger) Len() int {
	return len(l.records)
}

// WithdrawalSet tracks the transaction IDs consumed by accepted
// withdrawals. Withdrawals are never disputed, so membership is all the
// state they need.
type WithdrawalSet struct {
	ids map[domain.TxID]struct{}
}

func NewWithdrawalSet() *WithdrawalSet {
	return &WithdrawalSet{ids: make(map[domain.TxID]struct{})}
}

// Insert records a withdrawal ID. The ID must be unused by both
// withdrawals and deposits.
func (s *WithdrawalSet) Insert(id domain.TxID, deposits *DepositLedger) error {
	if s.Contains(id) || deposits.Contains(id) {
		return domain.ErrDuplicateID
	}
	s.ids[id] = struct{}{}
	return nil
}

func (s *WithdrawalSet) Contains(id domain.TxID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *WithdrawalSet) Len() int {
	return len(s.ids)
}
