package http

import (
	"encoding/json"
	"net/http"

	"staynest-admin-backend/internal/service"
)

type PayoutHandler struct {
	payoutSvc service.PayoutService
}

func NewPayoutHandler(payoutSvc service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc}
}

// List handles GET /payouts.
func (h *PayoutHandler) List(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutSvc.ListPayouts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data:  payouts,
		Total: int32(len(payouts)),
		Page:  1,
	})
}

type recordPayoutRequest struct {
	HostID    string  `json:"host_id"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

// Record handles POST /payouts.
func (h *PayoutHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.HostID == "" {
		writeError(w, http.StatusBadRequest, "host_id is required")
		return
	}

	payout, err := h.payoutSvc.RecordPayout(r.Context(), req.HostID, req.Amount, req.Reference)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payout)
}
