package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"staynest-admin-backend/internal/domain"
)

type payoutRepository struct {
	client *firestore.Client
}

func (r *payoutRepository) ListAll(ctx context.Context) ([]domain.Payout, error) {
	return r.list(ctx, r.client.Collection(payoutsCollection).Query)
}

func (r *payoutRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Payout, error) {
	return r.list(ctx, r.client.Collection(payoutsCollection).Where("hostId", "==", hostID))
}

func (r *payoutRepository) list(ctx context.Context, q firestore.Query) ([]domain.Payout, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var payouts []domain.Payout
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan payouts: %w", err)
		}
		payouts = append(payouts, payoutFromDoc(doc))
	}
	return payouts, nil
}

func (r *payoutRepository) Create(ctx context.Context, payout *domain.Payout) error {
	_, err := r.client.Collection(payoutsCollection).Doc(payout.ID).Set(ctx, map[string]any{
		"hostId":    payout.HostID,
		"amount":    payout.Amount,
		"status":    string(payout.Status),
		"method":    payout.Method,
		"reference": payout.Reference,
		"createdAt": payout.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create payout: %w", err)
	}
	return nil
}

func payoutFromDoc(doc *firestore.DocumentSnapshot) domain.Payout {
	data := doc.Data()
	p := domain.Payout{
		ID:        doc.Ref.ID,
		HostID:    asString(data["hostId"]),
		Status:    domain.PayoutStatus(asString(data["status"])),
		Method:    asString(data["method"]),
		Reference: asString(data["reference"]),
		CreatedAt: asTime(data["createdAt"]),
	}
	if v, ok := asFloat(data["amount"]); ok {
		p.Amount = v
	}
	return p
}
