package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// ApplyYieldInput is the Huma input for crediting monthly yield.
type ApplyYieldInput struct {
	account.AccountPath
}

// ApplyYieldHandler handles POST .../yield. Scheduling is up to the caller;
// every call credits one month.
type ApplyYieldHandler struct {
	Operator actionProcessor
}

func NewApplyYieldHandler(op actionProcessor) *ApplyYieldHandler {
	return &ApplyYieldHandler{Operator: op}
}

func (h *ApplyYieldHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "apply-yield",
		Method:      http.MethodPost,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/yield",
		Summary:     "Apply monthly yield",
		Description: "Credits balance times the monthly yield rate. Savings accounts only.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ApplyYieldHandler) handle(ctx context.Context, input *ApplyYieldInput) (*EntryOutput, error) {
	action := &actions.ApplyYield{Key: input.Key()}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromDomain(err, "failed to apply yield")
	}

	return &EntryOutput{Body: EntryResponse{
		Transaction: TransactionFromLedger(action.Transaction),
		Balance:     action.State.Balance.String(),
	}}, nil
}
