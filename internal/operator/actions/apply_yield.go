package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

// ApplyYield credits one month of yield to a savings account.
type ApplyYield struct {
	Key bank.Key

	Transaction bank.Transaction
	State       bank.AccountState
}

func (a *ApplyYield) Name() string { return "apply_yield" }

func (a *ApplyYield) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	account, err := ledger.Find(a.Key)
	if err != nil {
		return err
	}

	tx, err := account.ApplyMonthlyYield()
	if err != nil {
		return err
	}

	a.Transaction = tx
	a.State = account.Snapshot()
	return nil
}
