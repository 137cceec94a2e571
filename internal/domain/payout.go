package domain

import "time"

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusCompleted PayoutStatus = "completed"
	PayoutStatusSuccess   PayoutStatus = "success"
	PayoutStatusFailed    PayoutStatus = "failed"
)

// Settled reports whether the payout counts against the admin balance.
func (s PayoutStatus) Settled() bool {
	return s == PayoutStatusCompleted || s == PayoutStatusSuccess
}

// Payout is a recorded transfer of host earnings, normally via PayPal.
type Payout struct {
	ID        string       `json:"id"`
	HostID    string       `json:"host_id"`
	Amount    float64      `json:"amount"`
	Status    PayoutStatus `json:"status"`
	Method    string       `json:"method"`
	Reference string       `json:"reference,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
