package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"staynest-admin-backend/internal/domain"
)

// defaultFeePercentage applies when the settings document was never written.
const defaultFeePercentage = 10

type settingsRepository struct {
	client *firestore.Client
}

func (r *settingsRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(settingsCollection).Doc(settingsDocID)
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.AdminSettings, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.AdminSettings{FeePercentage: defaultFeePercentage}, nil
		}
		return nil, fmt.Errorf("failed to get admin settings: %w", err)
	}

	data := snap.Data()
	settings := &domain.AdminSettings{
		FeePercentage: defaultFeePercentage,
		UpdatedAt:     asTime(data["updatedAt"]),
	}
	if v, ok := asFloat(data["feePercentage"]); ok {
		settings.FeePercentage = v
	}
	if v, ok := asFloat(data["balance"]); ok {
		settings.StoredBalance = v
	}
	return settings, nil
}

func (r *settingsRepository) UpdateFeePercentage(ctx context.Context, pct float64) error {
	_, err := r.doc().Set(ctx, map[string]any{
		"feePercentage": pct,
		"updatedAt":     time.Now().UTC(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update fee percentage: %w", err)
	}
	return nil
}

func (r *settingsRepository) UpdateStoredBalance(ctx context.Context, balance float64) error {
	_, err := r.doc().Set(ctx, map[string]any{
		"balance":   balance,
		"updatedAt": time.Now().UTC(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update stored balance: %w", err)
	}
	return nil
}
