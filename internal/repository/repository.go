package repository

import (
	"context"

	"staynest-admin-backend/internal/domain"
)

type BookingRepository interface {
	// ListAll returns the full booking collection. Ledger and balance
	// computations depend on the unpaginated scan for correctness.
	ListAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetPayoutProcessed(ctx context.Context, id string, processed bool) error
}

type PayoutRepository interface {
	ListAll(ctx context.Context) ([]domain.Payout, error)
	ListByHost(ctx context.Context, hostID string) ([]domain.Payout, error)
	Create(ctx context.Context, payout *domain.Payout) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AdminSettings, error)
	UpdateFeePercentage(ctx context.Context, pct float64) error
	UpdateStoredBalance(ctx context.Context, balance float64) error
}

type ListingRepository interface {
	ListAll(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}
