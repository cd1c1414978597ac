// Package bank implements the account ledger: checking and savings accounts
// with balance floors, append-only transaction history and the account
// directory with its deletion workflow. It performs no I/O.
package bank

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// Bank is the account directory. It keeps accounts in insertion order and
// never changes an account's balance or history itself.
type Bank struct {
	mu       sync.RWMutex
	accounts []*Account
	index    map[Key]*Account
}

func NewBank() *Bank {
	return &Bank{index: make(map[Key]*Account)}
}

// AddAccount registers a. Keys are unique: a second account with the same key
// is rejected with ErrDuplicateAccount.
func (b *Bank) AddAccount(a *Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.index[a.key]; ok {
		return ErrDuplicateAccount
	}
	b.accounts = append(b.accounts, a)
	b.index[a.key] = a
	return nil
}

// OpenChecking builds a checking account and registers it.
func (b *Bank) OpenChecking(branchID, accountNumber, owner, address string, initialBalance, overdraftLimit, maintenanceFee decimal.Decimal) (*Account, error) {
	a, err := NewChecking(branchID, accountNumber, owner, address, initialBalance, overdraftLimit, maintenanceFee)
	if err != nil {
		return nil, err
	}
	if err := b.AddAccount(a); err != nil {
		return nil, err
	}
	return a, nil
}

// OpenSavings builds a savings account and registers it.
func (b *Bank) OpenSavings(branchID, accountNumber, owner, address string, initialBalance, monthlyYieldRate decimal.Decimal) (*Account, error) {
	a, err := NewSavings(branchID, accountNumber, owner, address, initialBalance, monthlyYieldRate)
	if err != nil {
		return nil, err
	}
	if err := b.AddAccount(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (b *Bank) FindAccount(branchID, accountNumber string) (*Account, error) {
	return b.Find(Key{BranchID: branchID, AccountNumber: accountNumber})
}

func (b *Bank) Find(key Key) (*Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	a, ok := b.index[key]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// RemoveAccount drops a from the directory. Removing an account that is not
// registered is a no-op.
func (b *Bank) RemoveAccount(a *Account) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(a)
}

func (b *Bank) removeLocked(a *Account) bool {
	i := slices.Index(b.accounts, a)
	if i < 0 {
		return false
	}
	b.accounts = slices.Delete(b.accounts, i, i+1)
	if b.index[a.key] == a {
		delete(b.index, a.key)
	}
	return true
}

// Accounts returns every registered account in insertion order.
func (b *Bank) Accounts() []*Account {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.accounts)
}

func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.accounts)
}

// PendingDeletions returns, in directory order, the accounts whose owners
// asked for deletion.
func (b *Bank) PendingDeletions() []*Account {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []*Account
	for _, a := range b.accounts {
		if a.DeletionRequested() {
			out = append(out, a)
		}
	}
	return out
}

// ApproveDeletion removes an account whose deletion was requested.
func (b *Bank) ApproveDeletion(a *Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !slices.Contains(b.accounts, a) {
		return ErrAccountNotFound
	}
	if !a.DeletionRequested() {
		return ErrDeletionNotRequested
	}
	b.removeLocked(a)
	return nil
}

// RejectDeletion clears a pending deletion request, returning the account to
// the active state.
func (b *Bank) RejectDeletion(a *Account) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !slices.Contains(b.accounts, a) {
		return ErrAccountNotFound
	}
	if !a.DeletionRequested() {
		return ErrDeletionNotRequested
	}
	a.SetDeletionRequested(false)
	return nil
}
