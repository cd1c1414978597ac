package bank

import (
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType tags the variant of an Account.
type AccountType int8

const (
	AccountTypeChecking AccountType = iota
	AccountTypeSavings
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeChecking:
		return "checking"
	case AccountTypeSavings:
		return "savings"
	default:
		return "unknown"
	}
}

var (
	DefaultOverdraftLimit   = decimal.NewFromInt(1000)
	DefaultMaintenanceFee   = decimal.NewFromInt(10)
	DefaultMonthlyYieldRate = decimal.RequireFromString("0.01")
)

// Key identifies an account within the directory.
type Key struct {
	BranchID      string
	AccountNumber string
}

func (k Key) String() string {
	return k.BranchID + "/" + k.AccountNumber
}

// Less orders keys by branch, then account number.
func (k Key) Less(other Key) bool {
	if k.BranchID != other.BranchID {
		return k.BranchID < other.BranchID
	}
	return k.AccountNumber < other.AccountNumber
}

// CheckingTerms holds the checking-only fields. MaintenanceFee is informational
// and never charged by the account itself.
type CheckingTerms struct {
	OverdraftLimit decimal.Decimal
	MaintenanceFee decimal.Decimal
}

// SavingsTerms holds the savings-only fields.
type SavingsTerms struct {
	MonthlyYieldRate decimal.Decimal
}

// AccountState is a point-in-time copy of an account's fields.
type AccountState struct {
	Key               Key
	Type              AccountType
	Owner             string
	Address           string
	Balance           decimal.Decimal
	InitialBalance    decimal.Decimal
	DeletionRequested bool
	TransactionCount  int
	Checking          CheckingTerms
	Savings           SavingsTerms
}

var accountSeq atomic.Uint64

// Account holds the balance and history of one checking or savings account.
// Balance and history change only through the operations below, each of which
// appends exactly one Transaction per balance change.
type Account struct {
	// seq breaks lock-order ties between distinct accounts sharing a key.
	seq uint64
	key Key
	typ AccountType

	mu                sync.Mutex
	owner             string
	address           string
	balance           decimal.Decimal
	initialBalance    decimal.Decimal
	history           []Transaction
	deletionRequested bool
	checking          CheckingTerms
	savings           SavingsTerms

	clock func() time.Time
}

func newAccount(typ AccountType, branchID, accountNumber, owner, address string, initialBalance decimal.Decimal) *Account {
	return &Account{
		seq:            accountSeq.Add(1),
		key:            Key{BranchID: branchID, AccountNumber: accountNumber},
		typ:            typ,
		owner:          owner,
		address:        address,
		balance:        initialBalance,
		initialBalance: initialBalance,
		clock:          time.Now,
	}
}

// NewChecking builds a checking account. The initial balance is not checked
// against the overdraft floor.
func NewChecking(branchID, accountNumber, owner, address string, initialBalance, overdraftLimit, maintenanceFee decimal.Decimal) (*Account, error) {
	if overdraftLimit.IsNegative() {
		return nil, fmt.Errorf("%w: overdraft limit must not be negative", ErrInvalidAmount)
	}
	if maintenanceFee.IsNegative() {
		return nil, fmt.Errorf("%w: maintenance fee must not be negative", ErrInvalidAmount)
	}
	a := newAccount(AccountTypeChecking, branchID, accountNumber, owner, address, initialBalance)
	a.checking = CheckingTerms{OverdraftLimit: overdraftLimit, MaintenanceFee: maintenanceFee}
	return a, nil
}

// NewSavings builds a savings account.
func NewSavings(branchID, accountNumber, owner, address string, initialBalance, monthlyYieldRate decimal.Decimal) (*Account, error) {
	if monthlyYieldRate.IsNegative() {
		return nil, fmt.Errorf("%w: monthly yield rate must not be negative", ErrInvalidAmount)
	}
	a := newAccount(AccountTypeSavings, branchID, accountNumber, owner, address, initialBalance)
	a.savings = SavingsTerms{MonthlyYieldRate: monthlyYieldRate}
	return a, nil
}

func (a *Account) Key() Key          { return a.key }
func (a *Account) Type() AccountType { return a.typ }

func (a *Account) Owner() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.owner
}

func (a *Account) Address() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.address
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) InitialBalance() decimal.Decimal {
	return a.initialBalance
}

// OverdraftLimit is zero for savings accounts.
func (a *Account) OverdraftLimit() decimal.Decimal { return a.checking.OverdraftLimit }

// MaintenanceFee is zero for savings accounts.
func (a *Account) MaintenanceFee() decimal.Decimal { return a.checking.MaintenanceFee }

// MonthlyYieldRate is zero for checking accounts.
func (a *Account) MonthlyYieldRate() decimal.Decimal { return a.savings.MonthlyYieldRate }

// History returns a copy of every transaction in insertion order.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Snapshot reads all fields under a single lock.
func (a *Account) Snapshot() AccountState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AccountState{
		Key:               a.key,
		Type:              a.typ,
		Owner:             a.owner,
		Address:           a.address,
		Balance:           a.balance,
		InitialBalance:    a.initialBalance,
		DeletionRequested: a.deletionRequested,
		TransactionCount:  len(a.history),
		Checking:          a.checking,
		Savings:           a.savings,
	}
}

// floor is the lowest balance a debit may leave behind.
func (a *Account) floor() decimal.Decimal {
	switch a.typ {
	case AccountTypeChecking:
		return a.checking.OverdraftLimit.Neg()
	default:
		return decimal.Zero
	}
}

// canDebit must be called with a.mu held.
func (a *Account) canDebit(amount decimal.Decimal) bool {
	return !a.balance.Sub(amount).LessThan(a.floor())
}

// apply must be called with a.mu held.
func (a *Account) apply(t Transaction) {
	a.balance = a.balance.Add(t.Amount)
	a.history = append(a.history, t)
}

// Deposit credits amount and records memo on the resulting transaction.
func (a *Account) Deposit(amount decimal.Decimal, memo string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	t := newTransaction(KindDeposit, amount, a.clock(), memo)
	a.apply(t)
	return t, nil
}

// Withdraw debits amount unless it would breach the account's floor.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.canDebit(amount) {
		return Transaction{}, ErrInsufficientFunds
	}
	t := newTransaction(KindWithdrawal, amount.Neg(), a.clock(), "withdrawal")
	a.apply(t)
	return t, nil
}

// Transfer moves amount from a to dst. Only a's floor is checked. Both sides
// are locked for the whole operation so either both entries are recorded or
// neither is.
func (a *Account) Transfer(dst *Account, amount decimal.Decimal) (out, in Transaction, err error) {
	if !amount.IsPositive() {
		return Transaction{}, Transaction{}, ErrInvalidAmount
	}
	if dst == nil {
		return Transaction{}, Transaction{}, ErrAccountNotFound
	}
	unlock := lockPair(a, dst)
	defer unlock()

	if !a.canDebit(amount) {
		return Transaction{}, Transaction{}, ErrInsufficientFunds
	}

	now := a.clock()
	out = newTransaction(KindTransferOut, amount.Neg(), now, "transfer to "+dst.key.String())
	in = newTransaction(KindTransferIn, amount, now, "transfer from "+a.key.String())
	a.apply(out)
	dst.apply(in)
	return out, in, nil
}

// lockPair locks both accounts in (key, seq) order and returns the unlock func.
func lockPair(x, y *Account) func() {
	if x == y {
		x.mu.Lock()
		return x.mu.Unlock
	}
	first, second := x, y
	if y.key.Less(x.key) || (y.key == x.key && y.seq < x.seq) {
		first, second = y, x
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// ApplyMonthlyYield credits balance * rate on a savings account. A balance
// below zero earns nothing, so the entry is never a debit. Scheduling (once
// per month) is up to the caller.
func (a *Account) ApplyMonthlyYield() (Transaction, error) {
	if a.typ != AccountTypeSavings {
		return Transaction{}, ErrYieldNotSupported
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	yield := decimal.Max(a.balance.Mul(a.savings.MonthlyYieldRate), decimal.Zero)
	t := newTransaction(KindYieldApplied, yield, a.clock(), "monthly yield")
	a.apply(t)
	return t, nil
}

// Statement yields, in insertion order, the transactions with a timestamp in
// the closed interval [from, to]. The history is read when iteration starts,
// so each range over the result reflects the account at that moment.
func (a *Account) Statement(from, to time.Time) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		a.mu.Lock()
		// history is append-only, so the captured prefix never changes.
		history := a.history
		a.mu.Unlock()

		for _, t := range history {
			if t.Timestamp.Before(from) || t.Timestamp.After(to) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

func (a *Account) UpdateAddress(address string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.address = address
}

func (a *Account) DeletionRequested() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deletionRequested
}

// SetDeletionRequested raises or clears the owner's deletion request.
func (a *Account) SetDeletionRequested(requested bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deletionRequested = requested
}
