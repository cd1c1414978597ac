package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// CreateAccountInput is the Huma input for opening an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for opening an account.
type CreateAccountBody struct {
	Type             string `json:"type" enum:"checking,savings" doc:"Account type"`
	BranchID         string `json:"branchID" minLength:"1" doc:"Branch identifier"`
	AccountNumber    string `json:"accountNumber" minLength:"1" doc:"Account number, unique within the branch"`
	Owner            string `json:"owner" minLength:"1" doc:"Account owner"`
	Address          string `json:"address" doc:"Owner address"`
	InitialBalance   string `json:"initialBalance,omitempty" doc:"Opening balance (e.g. '0' or '1234.56'), defaults to 0"`
	OverdraftLimit   string `json:"overdraftLimit,omitempty" doc:"Checking only, defaults to 1000"`
	MaintenanceFee   string `json:"maintenanceFee,omitempty" doc:"Checking only, defaults to 10"`
	MonthlyYieldRate string `json:"monthlyYieldRate,omitempty" doc:"Savings only, defaults to 0.01"`
}

// CreateAccountOutput is the response for opening an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// actionProcessor runs a ledger action on the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Open an account",
		Description:   "Opens a checking or savings account under a branch. Omitted terms fall back to the bank defaults.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseDecimal(field, value string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

func parseCreateAccountInput(input *CreateAccountInput) (*actions.OpenAccount, error) {
	action := &actions.OpenAccount{
		Key: bank.Key{
			BranchID:      input.Body.BranchID,
			AccountNumber: input.Body.AccountNumber,
		},
		Owner:   input.Body.Owner,
		Address: input.Body.Address,
	}

	var err error
	if action.InitialBalance, err = parseDecimal("initialBalance", input.Body.InitialBalance, decimal.Zero); err != nil {
		return nil, err
	}

	switch input.Body.Type {
	case "checking":
		action.Type = bank.AccountTypeChecking
		if action.OverdraftLimit, err = parseDecimal("overdraftLimit", input.Body.OverdraftLimit, bank.DefaultOverdraftLimit); err != nil {
			return nil, err
		}
		if action.MaintenanceFee, err = parseDecimal("maintenanceFee", input.Body.MaintenanceFee, bank.DefaultMaintenanceFee); err != nil {
			return nil, err
		}
	case "savings":
		action.Type = bank.AccountTypeSavings
		if action.MonthlyYieldRate, err = parseDecimal("monthlyYieldRate", input.Body.MonthlyYieldRate, bank.DefaultMonthlyYieldRate); err != nil {
			return nil, err
		}
	default:
		return nil, huma.NewError(http.StatusBadRequest, "type must be checking or savings", nil)
	}

	return action, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("openAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to open account")
	}

	if logData != nil {
		logData.AddData("accountKey", action.Key.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   AccountFromState(action.State),
	}, nil
}
