package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// AmountInput is the Huma input for deposits and withdrawals.
type AmountInput struct {
	account.AccountPath
	Body AmountBody
}

// DepositHandler handles POST .../deposit.
type DepositHandler struct {
	Operator actionProcessor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(op actionProcessor) *DepositHandler {
	return &DepositHandler{Operator: op}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/deposit",
		Summary:     "Deposit funds",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *AmountInput) (*EntryOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.Deposit{Key: input.Key(), Amount: amount, Memo: input.Body.Memo}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to deposit")
	}

	if logData != nil {
		logData.AddData("accountKey", action.Key.String())
		logData.AddData("transactionID", action.Transaction.ID.String())
	}

	return &EntryOutput{Body: EntryResponse{
		Transaction: TransactionFromLedger(action.Transaction),
		Balance:     action.State.Balance.String(),
	}}, nil
}

// WithdrawHandler handles POST .../withdraw.
type WithdrawHandler struct {
	Operator actionProcessor
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(op actionProcessor) *WithdrawHandler {
	return &WithdrawHandler{Operator: op}
}

// Register registers the withdraw endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/withdraw",
		Summary:     "Withdraw funds",
		Description: "Fails with 409 when the withdrawal would take the balance below the account floor.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *AmountInput) (*EntryOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.Withdraw{Key: input.Key(), Amount: amount}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("withdrawMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to withdraw")
	}

	if logData != nil {
		logData.AddData("accountKey", action.Key.String())
		logData.AddData("transactionID", action.Transaction.ID.String())
	}

	return &EntryOutput{Body: EntryResponse{
		Transaction: TransactionFromLedger(action.Transaction),
		Balance:     action.State.Balance.String(),
	}}, nil
}
