// Package admin serves the administrator side of the account deletion
// workflow. Routes are not authenticated.
package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// PendingDeletionsBody lists accounts awaiting review.
type PendingDeletionsBody struct {
	Accounts []account.Account `json:"accounts" doc:"Accounts with an open deletion request, in directory order"`
}

type PendingDeletionsOutput struct {
	Body PendingDeletionsBody
}

// pendingLister is the interface for reading pending deletion requests.
type pendingLister interface {
	PendingDeletions(ctx context.Context) ([]service.Account, error)
}

// actionProcessor runs a ledger action on the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// PendingDeletionsHandler handles GET /v1/admin/deletion-requests.
type PendingDeletionsHandler struct {
	AccountService pendingLister
}

func NewPendingDeletionsHandler(svc pendingLister) *PendingDeletionsHandler {
	return &PendingDeletionsHandler{AccountService: svc}
}

func (h *PendingDeletionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-deletion-requests",
		Method:      http.MethodGet,
		Path:        "/v1/admin/deletion-requests",
		Summary:     "List pending deletion requests",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *PendingDeletionsHandler) handle(ctx context.Context, _ *struct{}) (*PendingDeletionsOutput, error) {
	pending, err := h.AccountService.PendingDeletions(ctx)
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to list deletion requests")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("pendingCount", len(pending))
	}

	body := PendingDeletionsBody{Accounts: make([]account.Account, len(pending))}
	for i, a := range pending {
		body.Accounts[i] = account.AccountFromService(a)
	}
	return &PendingDeletionsOutput{Body: body}, nil
}

// ReviewDeletionInput identifies the account under review.
type ReviewDeletionInput struct {
	account.AccountPath
}

// ReviewDeletionOutput echoes the decision. A rejected request returns the
// account as it now stands; an approved one has no account left to return.
type ReviewDeletionOutput struct {
	Body struct {
		Decision string           `json:"decision" enum:"approved,rejected" doc:"Outcome of the review"`
		Account  *account.Account `json:"account,omitempty" doc:"Account after a rejection"`
	}
}

// ReviewDeletionHandler handles POST /v1/admin/deletion-requests/{branchID}/{accountNumber}/approve|reject.
type ReviewDeletionHandler struct {
	Operator actionProcessor
}

func NewReviewDeletionHandler(op actionProcessor) *ReviewDeletionHandler {
	return &ReviewDeletionHandler{Operator: op}
}

func (h *ReviewDeletionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "approve-deletion-request",
		Method:      http.MethodPost,
		Path:        "/v1/admin/deletion-requests/{branchID}/{accountNumber}/approve",
		Summary:     "Approve a deletion request",
		Description: "Removes the account from the directory. Fails with 409 when no deletion was requested.",
		Tags:        []string{"Admin"},
	}, h.handler(true))

	huma.Register(api, huma.Operation{
		OperationID: "reject-deletion-request",
		Method:      http.MethodPost,
		Path:        "/v1/admin/deletion-requests/{branchID}/{accountNumber}/reject",
		Summary:     "Reject a deletion request",
		Description: "Clears the request and leaves the account active.",
		Tags:        []string{"Admin"},
	}, h.handler(false))
}

func (h *ReviewDeletionHandler) handler(approve bool) func(context.Context, *ReviewDeletionInput) (*ReviewDeletionOutput, error) {
	return func(ctx context.Context, input *ReviewDeletionInput) (*ReviewDeletionOutput, error) {
		action := &actions.ReviewDeletion{Key: input.Key(), Approve: approve}
		if err := h.Operator.Process(ctx, action); err != nil {
			return nil, httperr.FromDomain(err, "failed to review deletion request")
		}

		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("accountKey", action.Key.String())
			logData.AddData("approved", approve)
		}

		out := &ReviewDeletionOutput{}
		if approve {
			out.Body.Decision = "approved"
			return out, nil
		}
		out.Body.Decision = "rejected"
		acc := account.AccountFromState(action.State)
		out.Body.Account = &acc
		return out, nil
	}
}
