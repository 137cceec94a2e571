package service

import (
	"context"

	"staynest-admin-backend/internal/domain"
)

// BookingFilter is the set of optional filters a booking list view applies.
// Empty state/payment values mean no filtering on that dimension.
type BookingFilter struct {
	State   domain.BookingState
	Payment domain.PaymentState
	Range   domain.DateRangeFilter
}

type BookingService interface {
	ListBookings(ctx context.Context, filter BookingFilter, page, pageSize int32) ([]domain.BookingView, int32, error)
	GetBooking(ctx context.Context, id string) (*domain.BookingView, error)
}

type LedgerService interface {
	// ListTransactions rebuilds the full transaction ledger from the
	// booking collection.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// GetBalance recomputes the admin balance from the ledger and the
	// payout collection; the stored snapshot is reported alongside.
	GetBalance(ctx context.Context) (*domain.BalanceSummary, error)
}

type PayoutService interface {
	ListPayouts(ctx context.Context) ([]domain.Payout, error)
	RecordPayout(ctx context.Context, hostID string, amount float64, reference string) (*domain.Payout, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.AdminSettings, error)
	UpdateFeePercentage(ctx context.Context, pct float64) (*domain.AdminSettings, error)
}

type ReportService interface {
	BookingReport(ctx context.Context, filter BookingFilter) (*domain.Report, error)
	TransactionReport(ctx context.Context) (*domain.Report, error)
}

type DirectoryService interface {
	ListListings(ctx context.Context) ([]domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListUsers(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type EmailService interface {
	SendPayoutNotification(ctx context.Context, email, name string, amount float64, reference string) error
	SendPayoutSummary(ctx context.Context, email string, count int, total float64) error
}
