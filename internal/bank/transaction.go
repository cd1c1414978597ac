package bank

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind classifies a Transaction.
type Kind int8

const (
	KindDeposit Kind = iota
	KindWithdrawal
	KindTransferOut
	KindTransferIn
	KindYieldApplied
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindTransferOut:
		return "transfer_out"
	case KindTransferIn:
		return "transfer_in"
	case KindYieldApplied:
		return "yield_applied"
	default:
		return "unknown"
	}
}

// Transaction is an immutable record of one balance change. Amount is signed:
// credits are positive and debits negative.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
	Memo      string
}

func newTransaction(kind Kind, amount decimal.Decimal, at time.Time, memo string) Transaction {
	return Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
		Memo:      memo,
	}
}
