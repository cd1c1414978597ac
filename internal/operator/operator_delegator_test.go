package operator

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/metrics"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

var (
	checkingKey = bank.Key{BranchID: "0001", AccountNumber: "100"}
	savingsKey  = bank.Key{BranchID: "0001", AccountNumber: "200"}
)

func newTestDelegator(t *testing.T, workers int) (*OperatorDelegator, *bank.Bank, *metrics.Metrics) {
	t.Helper()
	ledger := bank.NewBank()
	_, err := ledger.OpenChecking(checkingKey.BranchID, checkingKey.AccountNumber, "Ana", "Rua A",
		decimal.RequireFromString("200"), bank.DefaultOverdraftLimit, bank.DefaultMaintenanceFee)
	require.NoError(t, err)
	_, err = ledger.OpenSavings(savingsKey.BranchID, savingsKey.AccountNumber, "Bruno", "Rua B",
		decimal.Zero, bank.DefaultMonthlyYieldRate)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	d := NewOperatorDelegator(ledger, m, logging.SetupLogging(), workers, 16)
	d.Start()
	t.Cleanup(d.Stop)
	return d, ledger, m
}

func TestProcess_Success(t *testing.T) {
	d, ledger, m := newTestDelegator(t, 2)

	action := &actions.Deposit{Key: savingsKey, Amount: decimal.RequireFromString("12.50"), Memo: "cash"}
	err := d.Process(context.Background(), action)

	require.NoError(t, err)
	assert.Equal(t, bank.KindDeposit, action.Transaction.Kind)
	assert.True(t, action.State.Balance.Equal(decimal.RequireFromString("12.50")))

	account, err := ledger.Find(savingsKey)
	require.NoError(t, err)
	assert.Len(t, account.History(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActionsProcessed.WithLabelValues("deposit", metrics.OutcomeSuccess)))
}

func TestProcess_Rejected(t *testing.T) {
	d, _, m := newTestDelegator(t, 1)

	action := &actions.Withdraw{Key: savingsKey, Amount: decimal.RequireFromString("1")}
	err := d.Process(context.Background(), action)

	assert.ErrorIs(t, err, bank.ErrInsufficientFunds)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActionsProcessed.WithLabelValues("withdraw", metrics.OutcomeRejected)))
}

func TestProcess_CanceledContext(t *testing.T) {
	d, ledger, _ := newTestDelegator(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.Deposit{Key: savingsKey, Amount: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, context.Canceled)

	account, _ := ledger.Find(savingsKey)
	assert.Empty(t, account.History())
}

func TestProcess_AfterStop(t *testing.T) {
	d, _, _ := newTestDelegator(t, 1)
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &actions.Deposit{Key: savingsKey, Amount: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentTransfers(t *testing.T) {
	d, ledger, _ := newTestDelegator(t, 4)

	const n = 100
	one := decimal.RequireFromString("1")
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), &actions.Transfer{Source: checkingKey, Destination: savingsKey, Amount: one}))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), &actions.Deposit{Key: checkingKey, Amount: one}))
		}()
	}
	wg.Wait()

	c, _ := ledger.Find(checkingKey)
	s, _ := ledger.Find(savingsKey)
	assert.True(t, c.Balance().Equal(decimal.RequireFromString("200")))
	assert.True(t, s.Balance().Equal(decimal.RequireFromString("100")))
}

func TestNewOperatorDelegator_ClampsSizes(t *testing.T) {
	d := NewOperatorDelegator(bank.NewBank(), nil, nil, 0, 0)

	assert.Equal(t, 1, d.numWorkers)
	assert.Equal(t, 1, cap(d.queue))
}
