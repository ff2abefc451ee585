package engine

import "github.com/api-sage/txn-dispute-engine/internal/domain"

// AccountTable maps client IDs to accounts, created lazily on first
// reference with zero balances. Accounts are never deleted.
type AccountTable struct {
	accounts map[domain.ClientID]*domain.Account
}

func NewAccountTable() *AccountTable {
	return &AccountTable{accounts: make(map[domain.ClientID]*domain.Account)}
}

// GetOrCreate returns the client's account, initializing it on first use.
func (t *AccountTable) GetOrCreate(client domain.ClientID) *domain.Account {
	account, ok := t.accounts[client]
	if !ok {
		account = &domain.Account{}
		t.accounts[client] = account
	}
	return account
}

// Get returns the client's account without creating it.
func (t *AccountTable) Get(client domain.ClientID) (*domain.Account, bool) {
	account, ok := t.accounts[client]
	return account, ok
}

func (t *AccountTable) Len() int {
	return len(t.accounts)
}

// Snapshot exports every account ever referenced, in no particular
// order. Callers decide ordering and formatting.
func (t *AccountTable) Snapshot() []domain.AccountSnapshot {
	snapshots := make([]domain.AccountSnapshot, 0, len(t.accounts))
	for client, account := range t.accounts {
		snapshots = append(snapshots, domain.AccountSnapshot{
			Client:    client,
			Available: account.Available,
			Held:      account.Held,
			Total:     account.Total(),
			Frozen:    account.Frozen,
		})
	}
	return snapshots
}
