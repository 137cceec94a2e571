package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// Transaction is one ledger entry derived from an eligible booking. It is
// never persisted: the ledger is rebuilt from the booking collection on
// every read.
type Transaction struct {
	BookingID    string            `json:"booking_id"`
	GuestID      string            `json:"guest_id"`
	HostID       string            `json:"host_id"`
	ListingID    string            `json:"listing_id"`
	ListingTitle string            `json:"listing_title"`
	Subtotal     float64           `json:"subtotal"`
	AdminFee     float64           `json:"admin_fee"`
	HostPayout   float64           `json:"host_payout"`
	Status       TransactionStatus `json:"status"`
	Date         time.Time         `json:"date"`
}

// BalanceSummary is the admin balance recomputed from first principles.
// StoredBalance is the last snapshot kept in settings, reported only for
// comparison; Available is always the freshly computed value.
type BalanceSummary struct {
	Available      float64 `json:"available"`
	TotalAdminFees float64 `json:"total_admin_fees"`
	TotalPayouts   float64 `json:"total_payouts"`
	StoredBalance  float64 `json:"stored_balance"`
}
