package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

type Transfer struct {
	Source      bank.Key
	Destination bank.Key
	Amount      decimal.Decimal

	Out              bank.Transaction
	In               bank.Transaction
	SourceState      bank.AccountState
	DestinationState bank.AccountState
}

func (t *Transfer) Name() string { return "transfer" }

func (t *Transfer) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := ledger.Find(t.Source)
	if err != nil {
		return err
	}
	dst, err := ledger.Find(t.Destination)
	if err != nil {
		return err
	}

	out, in, err := src.Transfer(dst, t.Amount)
	if err != nil {
		return err
	}

	t.Out, t.In = out, in
	t.SourceState = src.Snapshot()
	t.DestinationState = dst.Snapshot()
	return nil
}
