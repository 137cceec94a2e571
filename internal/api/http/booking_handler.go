package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// List handles GET /bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bookingFilterFromQuery(r)
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	views, total, err := h.bookingSvc.ListBookings(r.Context(), filter, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data:     views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Get handles GET /bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	view, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// bookingFilterFromQuery builds the service filter from query parameters.
// The from/to values are passed through as raw strings; the date
// normalizer owns their interpretation.
func bookingFilterFromQuery(r *http.Request) service.BookingFilter {
	q := r.URL.Query()
	filter := service.BookingFilter{
		State:   domain.BookingState(q.Get("status")),
		Payment: domain.PaymentState(q.Get("payment_status")),
	}
	from := q.Get("from")
	to := q.Get("to")
	if from != "" || to != "" {
		filter.Range = domain.DateRangeFilter{Enabled: true}
		if from != "" {
			filter.Range.Start = from
		}
		if to != "" {
			filter.Range.End = to
		}
	}
	return filter
}

func queryInt32(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
