package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staynest-admin-backend/internal/domain"
)

var buildNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 {
	return &v
}

func TestBuild_FeeMath(t *testing.T) {
	bookings := []domain.Booking{
		{
			ID:         "b1",
			Status:     domain.BookingStatusConfirmed,
			PaidAmount: ptr(5000),
		},
	}

	txs := Build(bookings, 5, buildNow)
	require.Len(t, txs, 1)
	assert.Equal(t, 5000.0, txs[0].Subtotal)
	assert.Equal(t, 250.0, txs[0].AdminFee)
	assert.Equal(t, 4750.0, txs[0].HostPayout)
}

func TestBuild_SkipsIneligibleBookings(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "cancelled", Status: domain.BookingStatusCancelled, PaidAmount: ptr(1000)},
		{ID: "refunded", Status: domain.BookingStatusRefunded, PaidAmount: ptr(1000)},
		{ID: "unpaid", Status: domain.BookingStatusPending, Total: 1000},
		{ID: "zero-subtotal", Status: domain.BookingStatusConfirmed, PaidAmount: ptr(0)},
		{ID: "kept", Status: domain.BookingStatusConfirmed, Total: 2000},
	}

	txs := Build(bookings, 10, buildNow)
	require.Len(t, txs, 1)
	assert.Equal(t, "kept", txs[0].BookingID)
	assert.Equal(t, 200.0, txs[0].AdminFee)
}

func TestBuild_PaymentSignals(t *testing.T) {
	tests := []struct {
		name     string
		booking  domain.Booking
		eligible bool
	}{
		{
			"explicit completed payment",
			domain.Booking{Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusCompleted, Total: 100},
			true,
		},
		{
			"paid amount present",
			domain.Booking{Status: domain.BookingStatusPending, PaidAmount: ptr(100)},
			true,
		},
		{
			"payout already processed",
			domain.Booking{Status: domain.BookingStatusPending, PayoutProcessed: true, Total: 100},
			true,
		},
		{
			// Confirmation implies payment when a positive total exists.
			"confirmed with positive total only",
			domain.Booking{Status: domain.BookingStatusConfirmed, Total: 100},
			true,
		},
		{
			"completed with positive total only",
			domain.Booking{Status: domain.BookingStatusCompleted, TotalAmount: 100},
			true,
		},
		{
			"confirmed with zero total",
			domain.Booking{Status: domain.BookingStatusConfirmed},
			false,
		},
		{
			"pending with positive total only",
			domain.Booking{Status: domain.BookingStatusPending, Total: 100},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txs := Build([]domain.Booking{tc.booking}, 10, buildNow)
			if tc.eligible {
				assert.Len(t, txs, 1)
			} else {
				assert.Empty(t, txs)
			}
		})
	}
}

func TestBuild_SubtotalPrefersPaidAmount(t *testing.T) {
	b := domain.Booking{
		Status:     domain.BookingStatusConfirmed,
		PaidAmount: ptr(800),
		Total:      1000,
	}

	txs := Build([]domain.Booking{b}, 10, buildNow)
	require.Len(t, txs, 1)
	assert.Equal(t, 800.0, txs[0].Subtotal)
	assert.Equal(t, 80.0, txs[0].AdminFee)
}

func TestBuild_TransactionStatus(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "settled", Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), PayoutProcessed: true, CreatedAt: "2024-06-03"},
		{ID: "done", Status: domain.BookingStatusCompleted, PaidAmount: ptr(100), CreatedAt: "2024-06-02"},
		{ID: "open", Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), CreatedAt: "2024-06-01"},
	}

	txs := Build(bookings, 10, buildNow)
	require.Len(t, txs, 3)
	byID := map[string]domain.Transaction{}
	for _, tx := range txs {
		byID[tx.BookingID] = tx
	}
	assert.Equal(t, domain.TransactionStatusCompleted, byID["settled"].Status)
	assert.Equal(t, domain.TransactionStatusCompleted, byID["done"].Status)
	assert.Equal(t, domain.TransactionStatusPending, byID["open"].Status)
}

func TestBuild_DateFallbackChain(t *testing.T) {
	paid := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		booking  domain.Booking
		expected time.Time
	}{
		{
			"paid-at wins",
			domain.Booking{Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), PaidAt: paid, UpdatedAt: updated, CreatedAt: created},
			paid,
		},
		{
			"updated-at when paid-at is missing",
			domain.Booking{Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), UpdatedAt: updated, CreatedAt: created},
			updated,
		},
		{
			"created-at when the rest are unparseable",
			domain.Booking{Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), PaidAt: "??", UpdatedAt: "??", CreatedAt: created},
			created,
		},
		{
			"computation instant as last resort",
			domain.Booking{Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100)},
			buildNow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txs := Build([]domain.Booking{tc.booking}, 10, buildNow)
			require.Len(t, txs, 1)
			assert.True(t, tc.expected.Equal(txs[0].Date))
		})
	}
}

func TestBuild_SortsNewestFirst(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "old", Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), CreatedAt: "2024-01-05"},
		{ID: "new", Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), CreatedAt: "2024-06-05"},
		{ID: "mid", Status: domain.BookingStatusConfirmed, PaidAmount: ptr(100), CreatedAt: "2024-03-05"},
	}

	txs := Build(bookings, 10, buildNow)
	require.Len(t, txs, 3)
	assert.Equal(t, "new", txs[0].BookingID)
	assert.Equal(t, "mid", txs[1].BookingID)
	assert.Equal(t, "old", txs[2].BookingID)
}

func TestBuild_FeeAndPayoutConserveSubtotal(t *testing.T) {
	subtotals := []float64{5000, 1234.56, 0.01, 99.99, 1000.005, 77.77}
	fees := []float64{0, 2.5, 5, 10, 12.75, 100}

	for _, subtotal := range subtotals {
		for _, fee := range fees {
			b := domain.Booking{Status: domain.BookingStatusConfirmed, PaidAmount: ptr(subtotal)}
			txs := Build([]domain.Booking{b}, fee, buildNow)
			require.Len(t, txs, 1)
			assert.InDelta(t, txs[0].Subtotal, txs[0].AdminFee+txs[0].HostPayout, 0.01,
				"fee %.2f%% of %.2f", fee, subtotal)
		}
	}
}
