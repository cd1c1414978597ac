package account

import (
	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	BranchID          string `json:"branchID" doc:"Branch identifier"`
	AccountNumber     string `json:"accountNumber" doc:"Account number within the branch"`
	Type              string `json:"type" enum:"checking,savings" doc:"Account type"`
	Owner             string `json:"owner" doc:"Account owner"`
	Address           string `json:"address" doc:"Owner address"`
	Balance           string `json:"balance" doc:"Decimal balance"`
	InitialBalance    string `json:"initialBalance" doc:"Decimal balance the account was opened with"`
	DeletionRequested bool   `json:"deletionRequested" doc:"Owner asked for the account to be deleted"`
	TransactionCount  int    `json:"transactionCount" doc:"Number of recorded transactions"`
	OverdraftLimit    string `json:"overdraftLimit,omitempty" doc:"Checking only: how far below zero the balance may go"`
	MaintenanceFee    string `json:"maintenanceFee,omitempty" doc:"Checking only: informational monthly fee"`
	MonthlyYieldRate  string `json:"monthlyYieldRate,omitempty" doc:"Savings only: fraction credited per month"`
}

// AccountPath holds the path parameters identifying one account.
type AccountPath struct {
	BranchID      string `path:"branchID" minLength:"1" doc:"Branch identifier"`
	AccountNumber string `path:"accountNumber" minLength:"1" doc:"Account number within the branch"`
}

func (p AccountPath) Key() bank.Key {
	return bank.Key{BranchID: p.BranchID, AccountNumber: p.AccountNumber}
}

// AccountFromService converts the service model into the API model.
func AccountFromService(a service.Account) Account {
	out := Account{
		BranchID:          a.BranchID,
		AccountNumber:     a.AccountNumber,
		Type:              a.Type.String(),
		Owner:             a.Owner,
		Address:           a.Address,
		Balance:           a.Balance.String(),
		InitialBalance:    a.InitialBalance.String(),
		DeletionRequested: a.DeletionRequested,
		TransactionCount:  a.TransactionCount,
	}
	switch a.Type {
	case bank.AccountTypeChecking:
		out.OverdraftLimit = a.OverdraftLimit.String()
		out.MaintenanceFee = a.MaintenanceFee.String()
	case bank.AccountTypeSavings:
		out.MonthlyYieldRate = a.MonthlyYieldRate.String()
	}
	return out
}

// AccountFromState converts a ledger snapshot into the API model.
func AccountFromState(s bank.AccountState) Account {
	return AccountFromService(service.AccountFromState(s))
}

// AccountOutput wraps a single account response.
type AccountOutput struct {
	Body Account
}
