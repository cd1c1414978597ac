package service

import (
	"github.com/carson-networks/bank-ledger/internal/bank"
)

// Service holds all read-side services over the ledger.
type Service struct {
	Account *AccountService
}

// NewService creates a new Service with all sub-services.
func NewService(ledger *bank.Bank) *Service {
	return &Service{
		Account: NewAccountService(ledger),
	}
}
