package http

import (
	"net/http"

	"staynest-admin-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Bookings handles GET /reports/bookings. It honors the same filter query
// parameters as the booking list.
func (h *ReportHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.BookingReport(r.Context(), bookingFilterFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Transactions handles GET /reports/transactions.
func (h *ReportHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.TransactionReport(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
