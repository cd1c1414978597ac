package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/bank"
)

// RequestDeletion raises (Requested=true) or withdraws the owner's request to
// close an account.
type RequestDeletion struct {
	Key       bank.Key
	Requested bool

	State bank.AccountState
}

func (r *RequestDeletion) Name() string { return "request_deletion" }

func (r *RequestDeletion) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	account, err := ledger.Find(r.Key)
	if err != nil {
		return err
	}

	account.SetDeletionRequested(r.Requested)
	r.State = account.Snapshot()
	return nil
}

// ReviewDeletion is the administrator's decision on a pending request:
// approval removes the account, rejection clears the request.
type ReviewDeletion struct {
	Key     bank.Key
	Approve bool

	State bank.AccountState
}

func (r *ReviewDeletion) Name() string {
	if r.Approve {
		return "approve_deletion"
	}
	return "reject_deletion"
}

func (r *ReviewDeletion) Perform(ctx context.Context, ledger *bank.Bank) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	account, err := ledger.Find(r.Key)
	if err != nil {
		return err
	}

	if r.Approve {
		err = ledger.ApproveDeletion(account)
	} else {
		err = ledger.RejectDeletion(account)
	}
	if err != nil {
		return err
	}

	r.State = account.Snapshot()
	return nil
}
