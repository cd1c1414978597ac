package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
	"github.com/carson-networks/bank-ledger/internal/service"
)

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockPendingLister struct {
	mock.Mock
}

func (m *mockPendingLister) PendingDeletions(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Account), args.Error(1)
}

var testKey = bank.Key{BranchID: "0001", AccountNumber: "200"}

func savingsState(requested bool) bank.AccountState {
	return bank.AccountState{
		Key:               testKey,
		Type:              bank.AccountTypeSavings,
		Owner:             "Bruno",
		Balance:           decimal.RequireFromString("50"),
		DeletionRequested: requested,
		Savings:           bank.SavingsTerms{MonthlyYieldRate: bank.DefaultMonthlyYieldRate},
	}
}

func newTestAPI(t *testing.T, op actionProcessor, svc pendingLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewPendingDeletionsHandler(svc).Register(api)
	NewReviewDeletionHandler(op).Register(api)
	return api
}

type reviewBody struct {
	Decision string `json:"decision"`
	Account  *struct {
		AccountNumber     string `json:"accountNumber"`
		DeletionRequested bool   `json:"deletionRequested"`
	} `json:"account"`
}

func TestHTTP_PendingDeletions(t *testing.T) {
	svc := new(mockPendingLister)
	svc.On("PendingDeletions", mock.Anything).Return([]service.Account{service.AccountFromState(savingsState(true))}, nil)

	resp := newTestAPI(t, new(mockOperator), svc).Get("/v1/admin/deletion-requests")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PendingDeletionsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, "200", body.Accounts[0].AccountNumber)
	assert.Equal(t, "savings", body.Accounts[0].Type)
	assert.True(t, body.Accounts[0].DeletionRequested)
}

func TestHTTP_PendingDeletions_None(t *testing.T) {
	svc := new(mockPendingLister)
	svc.On("PendingDeletions", mock.Anything).Return(nil, nil)

	resp := newTestAPI(t, new(mockOperator), svc).Get("/v1/admin/deletion-requests")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PendingDeletionsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Accounts)
	assert.Empty(t, body.Accounts)
}

func TestHTTP_ApproveDeletion(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.ReviewDeletion) bool {
		return a.Key == testKey && a.Approve
	})).Return(nil)

	resp := newTestAPI(t, op, new(mockPendingLister)).Post("/v1/admin/deletion-requests/0001/200/approve")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body reviewBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "approved", body.Decision)
	assert.Nil(t, body.Account)
	op.AssertExpectations(t)
}

func TestHTTP_ApproveDeletion_NotRequested(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(bank.ErrDeletionNotRequested)

	resp := newTestAPI(t, op, new(mockPendingLister)).Post("/v1/admin/deletion-requests/0001/200/approve")

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_RejectDeletion(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.ReviewDeletion) bool {
		return a.Key == testKey && !a.Approve
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.ReviewDeletion).State = savingsState(false)
	}).Return(nil)

	resp := newTestAPI(t, op, new(mockPendingLister)).Post("/v1/admin/deletion-requests/0001/200/reject")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body reviewBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "rejected", body.Decision)
	require.NotNil(t, body.Account)
	assert.Equal(t, "200", body.Account.AccountNumber)
	assert.False(t, body.Account.DeletionRequested)
}

func TestHTTP_RejectDeletion_UnknownAccount(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(bank.ErrAccountNotFound)

	resp := newTestAPI(t, op, new(mockPendingLister)).Post("/v1/admin/deletion-requests/0009/999/reject")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
