package domain

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a deposit or withdrawal. Dispute, resolve and
// chargeback records reference an existing deposit's ID instead of
// introducing their own.
type TxID uint32

// TxKind is the closed set of transaction kinds the processor handles.
type TxKind uint8

const (
	TxDeposit TxKind = iota
	TxWithdrawal
	TxDispute
	TxResolve
	TxChargeback
)

func (k TxKind) String() string {
	switch k {
	case TxDeposit:
		return "deposit"
	case TxWithdrawal:
		return "withdrawal"
	case TxDispute:
		return "dispute"
	case TxResolve:
		return "resolve"
	case TxChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Transaction is one parsed input record. Amount is meaningful only for
// deposits and withdrawals.
type Transaction struct {
	Kind   TxKind
	Client ClientID
	Tx     TxID
	Amount Amount
}

func Deposit(client ClientID, tx TxID, amount Amount) Transaction {
	return Transaction{Kind: TxDeposit, Client: client, Tx: tx, Amount: amount}
}

func Withdrawal(client ClientID, tx TxID, amount Amount) Transaction {
	return Transaction{Kind: TxWithdrawal, Client: client, Tx: tx, Amount: amount}
}

func Dispute(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: TxDispute, Client: client, Tx: tx}
}

func Resolve(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: TxResolve, Client: client, Tx: tx}
}

func Chargeback(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: TxChargeback, Client: client, Tx: tx}
}
