package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// UpdateAddressInput is the Huma input for changing an owner's address.
type UpdateAddressInput struct {
	AccountPath
	Body struct {
		Address string `json:"address" doc:"New owner address"`
	}
}

// UpdateAddressHandler handles PUT .../address.
type UpdateAddressHandler struct {
	Operator actionProcessor
}

func NewUpdateAddressHandler(op actionProcessor) *UpdateAddressHandler {
	return &UpdateAddressHandler{Operator: op}
}

func (h *UpdateAddressHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account-address",
		Method:      http.MethodPut,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/address",
		Summary:     "Update the owner address",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAddressHandler) handle(ctx context.Context, input *UpdateAddressInput) (*AccountOutput, error) {
	action := &actions.UpdateAddress{Key: input.Key(), Address: input.Body.Address}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromDomain(err, "failed to update address")
	}
	return &AccountOutput{Body: AccountFromState(action.State)}, nil
}
