// Package booking holds the pure classification and filtering rules the
// admin list views apply to fetched booking collections.
package booking

import (
	"time"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/utils"
)

// ClassifyPayment derives the display payment state of a booking.
//
// Cancelled and refunded bookings are terminal. A paid-amount field counts
// as a payment signal by its presence, not its value. A check-in strictly
// in the future forces pending: upcoming bookings never show a completed
// payment. Unparseable check-in dates are treated as absent.
func ClassifyPayment(b domain.Booking, now time.Time) domain.PaymentState {
	if b.IsTerminal() {
		return domain.PaymentStateCancelled
	}
	if checkIn, ok := utils.ParseDate(b.CheckIn); ok && checkIn.After(now) {
		return domain.PaymentStatePending
	}
	if b.PaymentStatus == domain.PaymentStatusCompleted || b.PaidAmount != nil {
		return domain.PaymentStateCompleted
	}
	return domain.PaymentStatePending
}

// ClassifyBooking derives the display state of a booking.
//
// Bookings without parseable dates (service and experience bookings)
// resolve purely from the payment state.
func ClassifyBooking(b domain.Booking, now time.Time) domain.BookingState {
	if b.IsTerminal() {
		return domain.BookingStateCancelled
	}
	if checkIn, ok := utils.ParseDate(b.CheckIn); ok && checkIn.After(now) {
		return domain.BookingStateUpcoming
	}
	if ClassifyPayment(b, now) == domain.PaymentStateCompleted {
		return domain.BookingStateCompleted
	}
	return domain.BookingStateUpcoming
}

// Classify returns the booking enriched with both derived states.
func Classify(b domain.Booking, now time.Time) domain.BookingView {
	return domain.BookingView{
		Booking: b,
		State:   ClassifyBooking(b, now),
		Payment: ClassifyPayment(b, now),
	}
}
