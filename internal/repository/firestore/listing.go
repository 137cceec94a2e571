package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"staynest-admin-backend/internal/domain"
)

type listingRepository struct {
	client *firestore.Client
}

func (r *listingRepository) ListAll(ctx context.Context) ([]domain.Listing, error) {
	iter := r.client.Collection(listingsCollection).Documents(ctx)
	defer iter.Stop()

	var listings []domain.Listing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan listings: %w", err)
		}
		listings = append(listings, listingFromDoc(doc))
	}
	return listings, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	doc, err := r.client.Collection(listingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	l := listingFromDoc(doc)
	return &l, nil
}

func listingFromDoc(doc *firestore.DocumentSnapshot) domain.Listing {
	data := doc.Data()
	l := domain.Listing{
		ID:      doc.Ref.ID,
		HostID:  asString(data["hostId"]),
		Title:   asString(data["title"]),
		City:    asString(data["city"]),
		Country: asString(data["country"]),
		Active:  asBool(data["active"]),
	}
	if v, ok := asFloat(data["nightlyRate"]); ok {
		l.NightlyRate = v
	}
	return l
}
