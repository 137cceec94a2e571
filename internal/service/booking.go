package service

import (
	"context"
	"sort"
	"time"

	"staynest-admin-backend/internal/booking"
	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/repository"
	"staynest-admin-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

func (s *bookingService) ListBookings(ctx context.Context, filter BookingFilter, page, pageSize int32) ([]domain.BookingView, int32, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	views := make([]domain.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := booking.Classify(b, now)
		if filter.State != "" && view.State != filter.State {
			continue
		}
		if filter.Payment != "" && view.Payment != filter.Payment {
			continue
		}
		if !booking.MatchesBooking(b, filter.Range) {
			continue
		}
		views = append(views, view)
	}

	sortViewsByCreated(views)
	total := int32(len(views))
	return paginate(views, page, pageSize), total, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := booking.Classify(*b, time.Now())
	return &view, nil
}

// sortViewsByCreated orders newest first; bookings whose created-at cannot
// be parsed sink to the end.
func sortViewsByCreated(views []domain.BookingView) {
	sort.SliceStable(views, func(i, j int) bool {
		ti, oki := parseCreated(views[i])
		tj, okj := parseCreated(views[j])
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
}

func parseCreated(v domain.BookingView) (time.Time, bool) {
	return utils.ParseDate(v.CreatedAt)
}

// paginate slices the filtered views. A non-positive page size returns
// everything: ledger and report consumers always operate on the full set.
func paginate(views []domain.BookingView, page, pageSize int32) []domain.BookingView {
	if pageSize <= 0 {
		return views
	}
	if page < 1 {
		page = 1
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := int((page - 1) * pageSize)
	if offset >= len(views) {
		return []domain.BookingView{}
	}
	end := offset + int(pageSize)
	if end > len(views) {
		end = len(views)
	}
	return views[offset:end]
}
