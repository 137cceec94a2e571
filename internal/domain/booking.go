package domain

// BookingStatus is the raw status stored on a booking document.
type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "pending"
	BookingStatusPendingApproval BookingStatus = "pending_approval"
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusActive          BookingStatus = "active"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusCancelled       BookingStatus = "cancelled"
	BookingStatusRefunded        BookingStatus = "refunded"
)

// PaymentStatus is the raw payment status stored on a booking document.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusScheduled PaymentStatus = "scheduled"
)

// BookingState is the derived display state of a booking.
type BookingState string

const (
	BookingStateCompleted BookingState = "completed"
	BookingStateUpcoming  BookingState = "upcoming"
	BookingStateCancelled BookingState = "cancelled"
)

// PaymentState is the derived display state of a booking's payment.
type PaymentState string

const (
	PaymentStateCompleted PaymentState = "completed"
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCancelled PaymentState = "cancelled"
)

// Booking mirrors a booking document. Date fields keep the raw document
// value untouched: the store mixes time.Time, ISO strings, dd/mm/yyyy
// strings, epoch millis and timestamp wrappers, and normalization happens
// at the point of use.
type Booking struct {
	ID           string `json:"id"`
	GuestID      string `json:"guest_id"`
	HostID       string `json:"host_id"`
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`

	CheckIn  any `json:"check_in,omitempty"`
	CheckOut any `json:"check_out,omitempty"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`

	// PaidAmount presence signals payment was received, even when zero.
	PaidAmount  *float64 `json:"paid_amount,omitempty"`
	Total       float64  `json:"total"`
	TotalAmount float64  `json:"total_amount,omitempty"`

	CreatedAt any `json:"created_at,omitempty"`
	UpdatedAt any `json:"updated_at,omitempty"`
	PaidAt    any `json:"paid_at,omitempty"`

	PayoutProcessed bool `json:"payout_processed"`
}

// IsTerminal reports whether the booking is cancelled or refunded.
func (b Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusRefunded
}

// NominalTotal returns the nominal booking price, preferring the primary
// total field over the legacy total_amount field.
func (b Booking) NominalTotal() float64 {
	if b.Total != 0 {
		return b.Total
	}
	return b.TotalAmount
}

// Subtotal returns the gross amount a transaction would be built from:
// the paid amount when present, otherwise the nominal total.
func (b Booking) Subtotal() float64 {
	if b.PaidAmount != nil {
		return *b.PaidAmount
	}
	return b.NominalTotal()
}

// BookingView is a booking enriched with its derived states for list views.
type BookingView struct {
	Booking
	State   BookingState `json:"state"`
	Payment PaymentState `json:"payment_state"`
}

// DateRangeFilter is an inclusive date range filter. Bounds carry the same
// heterogeneous date representations as booking dates; a nil bound is open.
type DateRangeFilter struct {
	Start   any  `json:"start,omitempty"`
	End     any  `json:"end,omitempty"`
	Enabled bool `json:"enabled"`
}
