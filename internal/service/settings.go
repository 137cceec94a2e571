package service

import (
	"context"
	"fmt"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/repository"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.AdminSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) UpdateFeePercentage(ctx context.Context, pct float64) (*domain.AdminSettings, error) {
	if pct < 0 || pct > 100 {
		return nil, fmt.Errorf("%w: fee percentage must be between 0 and 100", domain.ErrInvalidInput)
	}
	if err := s.settingsRepo.UpdateFeePercentage(ctx, pct); err != nil {
		return nil, err
	}
	return s.settingsRepo.Get(ctx)
}
