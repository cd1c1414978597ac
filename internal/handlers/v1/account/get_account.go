package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// GetAccountInput is the Huma input for fetching an account.
type GetAccountInput struct {
	AccountPath
}

// accountGetter is the interface for fetching one account.
type accountGetter interface {
	GetAccount(ctx context.Context, key bank.Key) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/branches/{branchID}/accounts/{accountNumber}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*AccountOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountKey", input.Key().String())
	}

	account, err := h.AccountService.GetAccount(ctx, input.Key())
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to get account")
	}

	return &AccountOutput{Body: AccountFromService(*account)}, nil
}
