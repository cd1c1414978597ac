package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

type UpdateAddress struct {
	Key     bank.Key
	Address string

	State bank.AccountState
}

func (u *UpdateAddress) Name() string { return "update_address" }

func (u *UpdateAddress) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	account, err := ledger.Find(u.Key)
	if err != nil {
		return err
	}

	account.UpdateAddress(u.Address)
	u.State = account.Snapshot()
	return nil
}
