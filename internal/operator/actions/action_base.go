package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

// IAction is one unit of work run by an Operator against the ledger. Results
// are stored on the action itself once Perform returns nil.
type IAction interface {
	Name() string
	Perform(ctx context.Context, ledger *bank.Bank) error
}

