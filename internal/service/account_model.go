package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

// Account represents an account in the service layer.
type Account struct {
	BranchID          string
	AccountNumber     string
	Type              bank.AccountType
	Owner             string
	Address           string
	Balance           decimal.Decimal
	InitialBalance    decimal.Decimal
	DeletionRequested bool
	TransactionCount  int

	// Checking only.
	OverdraftLimit decimal.Decimal
	MaintenanceFee decimal.Decimal

	// Savings only.
	MonthlyYieldRate decimal.Decimal
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountFromState converts a ledger snapshot into the service model.
func AccountFromState(s bank.AccountState) Account {
	return Account{
		BranchID:          s.Key.BranchID,
		AccountNumber:     s.Key.AccountNumber,
		Type:              s.Type,
		Owner:             s.Owner,
		Address:           s.Address,
		Balance:           s.Balance,
		InitialBalance:    s.InitialBalance,
		DeletionRequested: s.DeletionRequested,
		TransactionCount:  s.TransactionCount,
		OverdraftLimit:    s.Checking.OverdraftLimit,
		MaintenanceFee:    s.Checking.MaintenanceFee,
		MonthlyYieldRate:  s.Savings.MonthlyYieldRate,
	}
}

func accountsFromLedger(accounts []*bank.Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = AccountFromState(a.Snapshot())
	}
	return out
}
