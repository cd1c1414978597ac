package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// DeletionRequestInput is the Huma input for raising or withdrawing a
// deletion request.
type DeletionRequestInput struct {
	AccountPath
}

// DeletionRequestHandler handles POST and DELETE .../deletion-request. The
// account stays fully usable until an administrator approves the request.
type DeletionRequestHandler struct {
	Operator actionProcessor
}

func NewDeletionRequestHandler(op actionProcessor) *DeletionRequestHandler {
	return &DeletionRequestHandler{Operator: op}
}

func (h *DeletionRequestHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "request-account-deletion",
		Method:      http.MethodPost,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/deletion-request",
		Summary:     "Request account deletion",
		Tags:        []string{"Accounts"},
	}, h.handler(true))

	huma.Register(api, huma.Operation{
		OperationID: "cancel-account-deletion",
		Method:      http.MethodDelete,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/deletion-request",
		Summary:     "Withdraw a deletion request",
		Tags:        []string{"Accounts"},
	}, h.handler(false))
}

func (h *DeletionRequestHandler) handler(requested bool) func(context.Context, *DeletionRequestInput) (*AccountOutput, error) {
	return func(ctx context.Context, input *DeletionRequestInput) (*AccountOutput, error) {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("accountKey", input.Key().String())
			logData.AddData("deletionRequested", requested)
		}

		action := &actions.RequestDeletion{Key: input.Key(), Requested: requested}
		if err := h.Operator.Process(ctx, action); err != nil {
			return nil, httperr.FromDomain(err, "failed to update deletion request")
		}
		return &AccountOutput{Body: AccountFromState(action.State)}, nil
	}
}
