package domain

import "time"

// AdminSettings holds the marketplace-wide admin configuration document.
// StoredBalance is a snapshot written by the nightly job and used only as
// a fallback/comparison value; balance reads always recompute.
type AdminSettings struct {
	FeePercentage float64   `json:"fee_percentage"`
	StoredBalance float64   `json:"stored_balance"`
	UpdatedAt     time.Time `json:"updated_at"`
}
