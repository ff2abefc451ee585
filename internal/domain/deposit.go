package domain

// DepositState tracks the dispute lifecycle of an accepted deposit.
// A deposit may cycle between Ok and Disputed any number of times; a
// chargeback evicts the record from the ledger, which is terminal.
type DepositState uint8

const (
	DepositOk DepositState = iota
	DepositDisputed
)

// DepositRecord is the per-deposit state held by the deposit ledger.
type DepositRecord struct {
	Client ClientID
	Amount Amount
	State  DepositState
}

// NewDepositRecord creates a record in the Ok state.
func NewDepositRecord(client ClientID, amount Amount) DepositRecord {
	return DepositRecord{Client: client, Amount: amount, State: DepositOk}
}
