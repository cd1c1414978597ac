// Package httperr translates ledger errors into huma status errors.
package httperr

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/operator"
)

// StatusClientClosedRequest is returned when the caller went away before the
// ledger answered.
const StatusClientClosedRequest = 499

// FromDomain maps err to a huma.StatusError. msg is used for the 500 case;
// known ledger errors carry their own message. A timeout or cancellation on a
// write is indeterminate: the action may already have been applied.
func FromDomain(err error, msg string) huma.StatusError {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrYieldNotSupported):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, bank.ErrAccountNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, bank.ErrDuplicateAccount),
		errors.Is(err, bank.ErrDeletionNotRequested):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("request timed out; the operation may still have been applied", err)
	case errors.Is(err, context.Canceled):
		return huma.NewError(StatusClientClosedRequest, "request canceled; the operation may still have been applied", err)
	case errors.Is(err, operator.ErrStopped):
		return huma.Error503ServiceUnavailable("ledger is shutting down", err)
	default:
		return huma.Error500InternalServerError(msg, err)
	}
}
