package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/service"
)

func TestReportService_BookingReport(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepo)
	bookingRepo.On("ListAll", ctx).Return([]domain.Booking{
		{
			ID:           "b1",
			ListingTitle: "Sea View Loft",
			GuestID:      "g1",
			Status:       domain.BookingStatusConfirmed,
			CheckIn:      "2024-03-10",
			CheckOut:     "2024-03-12",
			PaidAmount:   paid(500),
			CreatedAt:    "2024-03-01",
		},
		{
			ID:        "b2",
			GuestID:   "g2",
			Status:    domain.BookingStatusPending,
			CreatedAt: "2024-03-05",
		},
	}, nil)
	bookingSvc := service.NewBookingService(bookingRepo)
	svc := service.NewReportService(bookingSvc, nil)

	report, err := svc.BookingReport(ctx, service.BookingFilter{})
	require.NoError(t, err)

	assert.Equal(t, "Bookings Report", report.Title)
	require.Len(t, report.Columns, 8)
	assert.Equal(t, "Check-in", report.Columns[3].Label)
	require.Len(t, report.Rows, 2)

	// Newest booking first; every row matches the column count.
	for _, row := range report.Rows {
		assert.Len(t, row, len(report.Columns))
	}
	assert.Equal(t, "b2", report.Rows[0][0])
	assert.Equal(t, "", report.Rows[0][3], "missing dates render empty")
	assert.Equal(t, "b1", report.Rows[1][0])
	assert.Equal(t, "2024-03-10", report.Rows[1][3])
	assert.Equal(t, "2024-03-12", report.Rows[1][4])
	assert.Equal(t, "500.00", report.Rows[1][7])
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestReportService_TransactionReport(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepo)
	payoutRepo := new(MockPayoutRepo)
	settingsRepo := new(MockSettingsRepo)
	bookingRepo.On("ListAll", ctx).Return([]domain.Booking{
		{
			ID:           "b1",
			ListingTitle: "Sea View Loft",
			Status:       domain.BookingStatusConfirmed,
			PaidAmount:   paid(5000),
			PaidAt:       "2024-03-10",
		},
	}, nil)
	settingsRepo.On("Get", ctx).Return(&domain.AdminSettings{FeePercentage: 5}, nil)
	ledgerSvc := service.NewLedgerService(bookingRepo, payoutRepo, settingsRepo)
	svc := service.NewReportService(nil, ledgerSvc)

	report, err := svc.TransactionReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Transactions Report", report.Title)
	require.Len(t, report.Columns, 7)
	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "b1", row[0])
	assert.Equal(t, "Sea View Loft", row[1])
	assert.Equal(t, "2024-03-10", row[2])
	assert.Equal(t, "5000.00", row[3])
	assert.Equal(t, "250.00", row[4])
	assert.Equal(t, "4750.00", row[5])
	assert.Equal(t, string(domain.TransactionStatusPending), row[6])
}
