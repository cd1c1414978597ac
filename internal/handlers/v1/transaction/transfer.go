package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// AccountRef names an account in a request body.
type AccountRef struct {
	BranchID      string `json:"branchID" minLength:"1" doc:"Branch identifier"`
	AccountNumber string `json:"accountNumber" minLength:"1" doc:"Account number within the branch"`
}

func (r AccountRef) Key() bank.Key {
	return bank.Key{BranchID: r.BranchID, AccountNumber: r.AccountNumber}
}

// TransferBody is the request body for a transfer.
type TransferBody struct {
	Source      AccountRef `json:"source" doc:"Account to debit"`
	Destination AccountRef `json:"destination" doc:"Account to credit"`
	Amount      string     `json:"amount" doc:"Positive decimal amount"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	Body TransferBody
}

// TransferResponse carries both sides of a completed transfer.
type TransferResponse struct {
	Out                Transaction `json:"out" doc:"Entry recorded on the source"`
	In                 Transaction `json:"in" doc:"Entry recorded on the destination"`
	SourceBalance      string      `json:"sourceBalance" doc:"Source balance after the transfer"`
	DestinationBalance string      `json:"destinationBalance" doc:"Destination balance after the transfer"`
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Body TransferResponse
}

// TransferHandler handles POST /v1/transfer.
type TransferHandler struct {
	Operator actionProcessor
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op actionProcessor) *TransferHandler {
	return &TransferHandler{Operator: op}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer between accounts",
		Description: "Debits the source and credits the destination atomically. Only the source floor is checked.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.Transfer{
		Source:      input.Body.Source.Key(),
		Destination: input.Body.Destination.Key(),
		Amount:      amount,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to transfer")
	}

	if logData != nil {
		logData.AddData("source", action.Source.String())
		logData.AddData("destination", action.Destination.String())
	}

	return &TransferOutput{Body: TransferResponse{
		Out:                TransactionFromLedger(action.Out),
		In:                 TransactionFromLedger(action.In),
		SourceBalance:      action.SourceState.Balance.String(),
		DestinationBalance: action.DestinationState.Balance.String(),
	}}, nil
}
