// Package firestore implements the repository interfaces on top of a
// Cloud Firestore document store. Documents are decoded leniently from
// their raw map form: the dashboard that writes them has mixed date
// representations over time, and those raw values must survive intact to
// the date normalizer.
package firestore

import (
	"time"

	"cloud.google.com/go/firestore"

	"staynest-admin-backend/internal/repository"
)

const (
	bookingsCollection = "bookings"
	payoutsCollection  = "payouts"
	listingsCollection = "listings"
	usersCollection    = "users"
	settingsCollection = "settings"
	settingsDocID      = "admin"
)

// Store bundles the Firestore-backed repositories.
type Store struct {
	Bookings repository.BookingRepository
	Payouts  repository.PayoutRepository
	Settings repository.SettingsRepository
	Listings repository.ListingRepository
	Users    repository.UserRepository
}

// NewStore creates repositories sharing a single Firestore client.
func NewStore(client *firestore.Client) *Store {
	return &Store{
		Bookings: &bookingRepository{client: client},
		Payouts:  &payoutRepository{client: client},
		Settings: &settingsRepository{client: client},
		Listings: &listingRepository{client: client},
		Users:    &userRepository{client: client},
	}
}

// Lenient field accessors. Firestore decodes numbers as int64 or float64
// depending on how the writing client stored them.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func asTime(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}
