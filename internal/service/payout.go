package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/logger"
	"staynest-admin-backend/internal/repository"
)

type payoutService struct {
	payoutRepo  repository.PayoutRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewPayoutService(
	payoutRepo repository.PayoutRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) PayoutService {
	return &payoutService{
		payoutRepo:  payoutRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *payoutService) ListPayouts(ctx context.Context) ([]domain.Payout, error) {
	return s.payoutRepo.ListAll(ctx)
}

func (s *payoutService) RecordPayout(ctx context.Context, hostID string, amount float64, reference string) (*domain.Payout, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: payout amount must be positive", domain.ErrInvalidInput)
	}

	host, err := s.userRepo.GetByID(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve host: %w", err)
	}

	payout := &domain.Payout{
		ID:        uuid.NewString(),
		HostID:    hostID,
		Amount:    amount,
		Status:    domain.PayoutStatusCompleted,
		Method:    "paypal",
		Reference: reference,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.payoutRepo.Create(ctx, payout); err != nil {
		return nil, err
	}

	s.markSettledBookings(ctx, hostID)

	if host.Email != "" {
		if err := s.emailSvc.SendPayoutNotification(ctx, host.Email, host.Name, amount, reference); err != nil {
			logger.Error("Failed to send payout notification", "host_id", hostID, "error", err)
		}
	}

	return payout, nil
}

// markSettledBookings flags the host's completed bookings as paid out so
// the transaction view reflects the settlement. Failures are logged, not
// fatal: the flag is advisory and the ledger recomputes either way.
func (s *payoutService) markSettledBookings(ctx context.Context, hostID string) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to scan bookings after payout", "host_id", hostID, "error", err)
		return
	}
	for _, b := range bookings {
		if b.HostID != hostID || b.PayoutProcessed {
			continue
		}
		if b.Status != domain.BookingStatusCompleted {
			continue
		}
		if err := s.bookingRepo.SetPayoutProcessed(ctx, b.ID, true); err != nil {
			logger.Error("Failed to mark booking payout processed", "booking_id", b.ID, "error", err)
		}
	}
}
