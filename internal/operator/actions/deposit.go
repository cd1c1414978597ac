package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

type Deposit struct {
	Key    bank.Key
	Amount decimal.Decimal
	Memo   string

	Transaction bank.Transaction
	State       bank.AccountState
}

func (d *Deposit) Name() string { return "deposit" }

func (d *Deposit) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	account, err := ledger.Find(d.Key)
	if err != nil {
		return err
	}

	tx, err := account.Deposit(d.Amount, d.Memo)
	if err != nil {
		return err
	}

	d.Transaction = tx
	d.State = account.Snapshot()
	return nil
}

type Withdraw struct {
	Key    bank.Key
	Amount decimal.Decimal

	Transaction bank.Transaction
	State       bank.AccountState
}

func (w *Withdraw) Name() string { return "withdraw" }

func (w *Withdraw) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	account, err := ledger.Find(w.Key)
	if err != nil {
		return err
	}

	tx, err := account.Withdraw(w.Amount)
	if err != nil {
		return err
	}

	w.Transaction = tx
	w.State = account.Snapshot()
	return nil
}
