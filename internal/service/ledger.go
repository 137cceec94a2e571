package service

import (
	"context"
	"time"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/ledger"
	"staynest-admin-backend/internal/repository"
)

type ledgerService struct {
	bookingRepo  repository.BookingRepository
	payoutRepo   repository.PayoutRepository
	settingsRepo repository.SettingsRepository
}

func NewLedgerService(
	bookingRepo repository.BookingRepository,
	payoutRepo repository.PayoutRepository,
	settingsRepo repository.SettingsRepository,
) LedgerService {
	return &ledgerService{
		bookingRepo:  bookingRepo,
		payoutRepo:   payoutRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Build(bookings, settings.FeePercentage, time.Now()), nil
}

func (s *ledgerService) GetBalance(ctx context.Context) (*domain.BalanceSummary, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payoutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	transactions := ledger.Build(bookings, settings.FeePercentage, time.Now())
	summary := ledger.Summarize(transactions, payouts, settings.StoredBalance)
	return &summary, nil
}
