package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

// OpenAccount registers a new checking or savings account. Terms that do not
// apply to the chosen type are ignored.
type OpenAccount struct {
	Type             bank.AccountType
	Key              bank.Key
	Owner            string
	Address          string
	InitialBalance   decimal.Decimal
	OverdraftLimit   decimal.Decimal
	MaintenanceFee   decimal.Decimal
	MonthlyYieldRate decimal.Decimal

	State bank.AccountState
}

func (o *OpenAccount) Name() string { return "open_account" }

func (o *OpenAccount) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		account *bank.Account
		err     error
	)
	switch o.Type {
	case bank.AccountTypeChecking:
		account, err = ledger.OpenChecking(o.Key.BranchID, o.Key.AccountNumber, o.Owner, o.Address,
			o.InitialBalance, o.OverdraftLimit, o.MaintenanceFee)
	case bank.AccountTypeSavings:
		account, err = ledger.OpenSavings(o.Key.BranchID, o.Key.AccountNumber, o.Owner, o.Address,
			o.InitialBalance, o.MonthlyYieldRate)
	default:
		return fmt.Errorf("unknown account type %d", o.Type)
	}
	if err != nil {
		return err
	}

	o.State = account.Snapshot()
	return nil
}
