package http

import (
	"net/http"

	"staynest-admin-backend/internal/service"
)

type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// ListTransactions handles GET /transactions.
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerSvc.ListTransactions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data:  transactions,
		Total: int32(len(transactions)),
		Page:  1,
	})
}

// GetBalance handles GET /balance.
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerSvc.GetBalance(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
