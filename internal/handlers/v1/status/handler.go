package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/bank-ledger/internal/logging"
)

// accountCounter reports how many accounts the directory holds.
type accountCounter interface {
	Len() int
}

type Handler struct {
	Ledger accountCounter
}

func NewHandler(ledger accountCounter) Handler {
	return Handler{Ledger: ledger}
}

type statusResponse struct {
	Status   string `json:"status"`
	Accounts int    `json:"accounts"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	count := h.Ledger.Len()
	logData.AddData("accounts", count)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(statusResponse{Status: "ok", Accounts: count})
}
