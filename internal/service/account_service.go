package service

import (
	"context"
	"slices"
	"time"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

const defaultAccountLimit = 20

// AccountService answers account queries directly from the ledger. Writes go
// through the operator.
type AccountService struct {
	ledger *bank.Bank
}

// NewAccountService creates a new AccountService.
func NewAccountService(ledger *bank.Bank) *AccountService {
	return &AccountService{ledger: ledger}
}

// GetAccount retrieves an account by key.
func (s *AccountService) GetAccount(ctx context.Context, key bank.Key) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a, err := s.ledger.Find(key)
	if err != nil {
		return nil, err
	}
	account := AccountFromState(a.Snapshot())
	return &account, nil
}

// ListAccounts returns a page of accounts in directory order using offset
// cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = max(cursor.Position, 0)
	}

	accounts := s.ledger.Accounts()
	if offset >= len(accounts) {
		return nil, nil, nil
	}
	accounts = accounts[offset:]

	var nextCursor *AccountCursor
	if len(accounts) > limit {
		accounts = accounts[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return accountsFromLedger(accounts), nextCursor, nil
}

// Statement returns the account's transactions with a timestamp in [from, to].
func (s *AccountService) Statement(ctx context.Context, key bank.Key, from, to time.Time) ([]bank.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a, err := s.ledger.Find(key)
	if err != nil {
		return nil, err
	}
	return slices.Collect(a.Statement(from, to)), nil
}

// PendingDeletions lists accounts awaiting an approve/reject decision.
func (s *AccountService) PendingDeletions(ctx context.Context) ([]Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return accountsFromLedger(s.ledger.PendingDeletions()), nil
}
