package service

import (
	"context"
	"fmt"
	"time"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/utils"
)

// reportService flattens booking and transaction views into the plain
// title/columns/rows shape the print and PDF renderers consume. The
// renderer itself lives client-side; this service only supplies data.
type reportService struct {
	bookingSvc BookingService
	ledgerSvc  LedgerService
}

func NewReportService(bookingSvc BookingService, ledgerSvc LedgerService) ReportService {
	return &reportService{bookingSvc: bookingSvc, ledgerSvc: ledgerSvc}
}

func (s *reportService) BookingReport(ctx context.Context, filter BookingFilter) (*domain.Report, error) {
	// Reports are never paginated: page size 0 fetches the full set.
	views, _, err := s.bookingSvc.ListBookings(ctx, filter, 1, 0)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.ID,
			v.ListingTitle,
			v.GuestID,
			formatReportDate(v.CheckIn),
			formatReportDate(v.CheckOut),
			string(v.State),
			string(v.Payment),
			formatAmount(v.Subtotal()),
		})
	}

	return &domain.Report{
		Title: "Bookings Report",
		Columns: []domain.ReportColumn{
			{Key: "id", Label: "Booking", Width: 2},
			{Key: "listing", Label: "Listing", Width: 4},
			{Key: "guest", Label: "Guest", Width: 3},
			{Key: "check_in", Label: "Check-in", Width: 2},
			{Key: "check_out", Label: "Check-out", Width: 2},
			{Key: "status", Label: "Status", Width: 2},
			{Key: "payment", Label: "Payment", Width: 2},
			{Key: "total", Label: "Total", Width: 2},
		},
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *reportService) TransactionReport(ctx context.Context) (*domain.Report, error) {
	transactions, err := s.ledgerSvc.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			t.BookingID,
			t.ListingTitle,
			t.Date.Format("2006-01-02"),
			formatAmount(t.Subtotal),
			formatAmount(t.AdminFee),
			formatAmount(t.HostPayout),
			string(t.Status),
		})
	}

	return &domain.Report{
		Title: "Transactions Report",
		Columns: []domain.ReportColumn{
			{Key: "booking", Label: "Booking", Width: 3},
			{Key: "listing", Label: "Listing", Width: 4},
			{Key: "date", Label: "Date", Width: 2},
			{Key: "subtotal", Label: "Subtotal", Width: 2},
			{Key: "admin_fee", Label: "Admin Fee", Width: 2},
			{Key: "host_payout", Label: "Host Payout", Width: 2},
			{Key: "status", Label: "Status", Width: 2},
		},
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func formatReportDate(value any) string {
	if t, ok := utils.ParseDate(value); ok {
		return t.Format("2006-01-02")
	}
	return ""
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
