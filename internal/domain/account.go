package domain

// Account holds a client's balances. Available may go negative when a
// disputed deposit's funds were already withdrawn; that is a debt
// condition, not an error. Frozen is set only by a chargeback and never
// reverts.
type Account struct {
	Available Amount
	Held      Amount
	Frozen    bool
}

// Total is the account's full balance. It is derived, never stored.
func (a *Account) Total() Amount {
	return a.Available + a.Held
}

// AccountSnapshot is the exported view of one account.
type AccountSnapshot struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Frozen    bool
}

// RejectedTransaction is one audit entry for a skipped input record.
type RejectedTransaction struct {
	Kind   TxKind
	Client ClientID
	Tx     TxID
	Reason string
}

// RunRecord summarizes one completed pass over an input sequence, for
// archival. The in-memory stores remain the source of truth; the record
// is write-only telemetry.
type RunRecord struct {
	ID         string
	Processed  int
	Accepted   int
	Rejected   int
	Accounts   []AccountSnapshot
	Rejections []RejectedTransaction
}
