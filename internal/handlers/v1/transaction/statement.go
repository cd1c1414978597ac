package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-ledger/internal/bank"
	"github.com/carson-networks/bank-ledger/internal/handlers/httperr"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

// statementEnd stands in for an open upper bound.
var statementEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// StatementInput is the Huma input for an account statement.
type StatementInput struct {
	account.AccountPath
	From string `query:"from" format:"date-time" doc:"Inclusive RFC3339 lower bound, unbounded when omitted"`
	To   string `query:"to" format:"date-time" doc:"Inclusive RFC3339 upper bound, unbounded when omitted"`
}

// StatementResponseBody is the response body for a statement.
type StatementResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Entries within the range, oldest first"`
}

// StatementOutput is the Huma output for a statement.
type StatementOutput struct {
	Body StatementResponseBody
}

// statementReader is the interface for reading a statement.
type statementReader interface {
	Statement(ctx context.Context, key bank.Key, from, to time.Time) ([]bank.Transaction, error)
}

// StatementHandler handles GET .../statement.
type StatementHandler struct {
	AccountService statementReader
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(svc statementReader) *StatementHandler {
	return &StatementHandler{AccountService: svc}
}

// Register registers the statement endpoint with the Huma API.
func (h *StatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statement",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/accounts/{accountNumber}/statement",
		Summary:     "Account statement",
		Description: "Returns the entries whose timestamp falls within [from, to].",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseStatementInput(input *StatementInput) (from, to time.Time, err error) {
	to = statementEnd
	if input.From != "" {
		if from, err = time.Parse(time.RFC3339, input.From); err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid from", err)
		}
	}
	if input.To != "" {
		if to, err = time.Parse(time.RFC3339, input.To); err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid to", err)
		}
	}
	return from, to, nil
}

func (h *StatementHandler) handle(ctx context.Context, input *StatementInput) (*StatementOutput, error) {
	logData := logging.GetLogData(ctx)

	from, to, err := parseStatementInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("statementMs")
	}
	txs, err := h.AccountService.Statement(ctx, input.Key(), from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromDomain(err, "failed to build statement")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(txs))
	}

	resp := StatementResponseBody{Transactions: make([]Transaction, len(txs))}
	for i, tx := range txs {
		resp.Transactions[i] = TransactionFromLedger(tx)
	}
	return &StatementOutput{Body: resp}, nil
}
