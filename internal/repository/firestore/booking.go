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

type bookingRepository struct {
	client *firestore.Client
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	iter := r.client.Collection(bookingsCollection).Documents(ctx)
	defer iter.Stop()

	var bookings []domain.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookings: %w", err)
		}
		bookings = append(bookings, bookingFromDoc(doc))
	}
	return bookings, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	doc, err := r.client.Collection(bookingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking %s: %w", id, err)
	}
	b := bookingFromDoc(doc)
	return &b, nil
}

func (r *bookingRepository) SetPayoutProcessed(ctx context.Context, id string, processed bool) error {
	_, err := r.client.Collection(bookingsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "payoutProcessed", Value: processed},
	})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return nil
}

// bookingFromDoc maps a raw booking document into the domain shape. Date
// fields are deliberately carried over untyped.
func bookingFromDoc(doc *firestore.DocumentSnapshot) domain.Booking {
	data := doc.Data()
	b := domain.Booking{
		ID:              doc.Ref.ID,
		GuestID:         asString(data["guestId"]),
		HostID:          asString(data["hostId"]),
		ListingID:       asString(data["listingId"]),
		ListingTitle:    asString(data["listingTitle"]),
		CheckIn:         data["checkIn"],
		CheckOut:        data["checkOut"],
		Status:          domain.BookingStatus(asString(data["status"])),
		PaymentStatus:   domain.PaymentStatus(asString(data["paymentStatus"])),
		CreatedAt:       data["createdAt"],
		UpdatedAt:       data["updatedAt"],
		PaidAt:          data["paidAt"],
		PayoutProcessed: asBool(data["payoutProcessed"]),
	}
	if v, ok := asFloat(data["paidAmount"]); ok {
		b.PaidAmount = &v
	}
	if v, ok := asFloat(data["total"]); ok {
		b.Total = v
	}
	if v, ok := asFloat(data["totalAmount"]); ok {
		b.TotalAmount = v
	}
	return b
}
