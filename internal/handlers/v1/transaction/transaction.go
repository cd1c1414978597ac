package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	Kind      string `json:"kind" enum:"deposit,withdrawal,transfer_out,transfer_in,yield_applied" doc:"Entry kind"`
	Amount    string `json:"amount" doc:"Signed decimal amount, negative for debits"`
	Timestamp string `json:"timestamp" doc:"RFC3339 time the entry was recorded"`
	Memo      string `json:"memo" doc:"Free-form description"`
}

// TransactionFromLedger converts a ledger entry into the API model.
func TransactionFromLedger(tx bank.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		Kind:      tx.Kind.String(),
		Amount:    tx.Amount.String(),
		Timestamp: tx.Timestamp.Format(time.RFC3339Nano),
		Memo:      tx.Memo,
	}
}

// EntryResponse is returned by operations that record a single entry.
type EntryResponse struct {
	Transaction Transaction `json:"transaction" doc:"The recorded entry"`
	Balance     string      `json:"balance" doc:"Account balance after the entry"`
}

// EntryOutput is the Huma output for single-entry operations.
type EntryOutput struct {
	Body EntryResponse
}

// AmountBody is the request body for deposits and withdrawals.
type AmountBody struct {
	Amount string `json:"amount" doc:"Positive decimal amount"`
	Memo   string `json:"memo,omitempty" doc:"Deposit description, ignored for withdrawals"`
}

// actionProcessor runs a ledger action on the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}
