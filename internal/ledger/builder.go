// Package ledger derives the admin transaction ledger and balance from
// the raw booking and payout collections. Nothing here is persisted: the
// ledger is rebuilt from a fresh scan on every read, which is what keeps
// the balance honest.
package ledger

import (
	"sort"
	"time"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/utils"
)

// Build scans the full booking collection and emits one transaction per
// eligible booking, sorted by transaction date descending. It must be fed
// the unfiltered collection: UI-level status or date filters never apply
// to fee accounting.
func Build(bookings []domain.Booking, feePercentage float64, now time.Time) []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(bookings))
	for _, b := range bookings {
		if b.IsTerminal() {
			continue
		}
		if !paymentReceived(b) {
			continue
		}
		subtotal := b.Subtotal()
		if subtotal <= 0 {
			continue
		}

		adminFee := utils.Round2(subtotal * feePercentage / 100)
		transactions = append(transactions, domain.Transaction{
			BookingID:    b.ID,
			GuestID:      b.GuestID,
			HostID:       b.HostID,
			ListingID:    b.ListingID,
			ListingTitle: b.ListingTitle,
			Subtotal:     subtotal,
			AdminFee:     adminFee,
			HostPayout:   utils.Round2(subtotal - adminFee),
			Status:       transactionStatus(b),
			Date:         transactionDate(b, now),
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

// paymentReceived is the eligibility payment signal. A confirmed booking
// with a positive total counts as paid even without an explicit payment
// field; confirmation implies payment in this marketplace.
func paymentReceived(b domain.Booking) bool {
	if b.PaymentStatus == domain.PaymentStatusCompleted {
		return true
	}
	if b.PaidAmount != nil {
		return true
	}
	if b.PayoutProcessed {
		return true
	}
	if b.NominalTotal() > 0 &&
		(b.Status == domain.BookingStatusConfirmed || b.Status == domain.BookingStatusCompleted) {
		return true
	}
	return false
}

func transactionStatus(b domain.Booking) domain.TransactionStatus {
	if b.PayoutProcessed || b.Status == domain.BookingStatusCompleted {
		return domain.TransactionStatusCompleted
	}
	return domain.TransactionStatusPending
}

// transactionDate picks the first parseable of paid-at, updated-at and
// created-at, falling back to the computation instant.
func transactionDate(b domain.Booking, now time.Time) time.Time {
	for _, candidate := range []any{b.PaidAt, b.UpdatedAt, b.CreatedAt} {
		if t, ok := utils.ParseDate(candidate); ok {
			return t
		}
	}
	return now
}
