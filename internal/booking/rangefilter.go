package booking

import (
	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/utils"
)

// MatchesRange decides whether a candidate stay falls inside an inclusive
// date range filter.
//
// A disabled filter, or one with no bounds, matches everything. When any
// bound is active, a candidate whose start cannot be parsed is excluded
// (fail closed on the anchor date). The candidate end defaults to the
// candidate start for single-instant bookings. With both bounds set this
// is a symmetric interval-overlap test, not containment: touching
// endpoints count as overlapping, and a filter whose start lies after its
// end describes an empty interval and matches nothing.
func MatchesRange(candidateStart, candidateEnd any, f domain.DateRangeFilter) bool {
	if !f.Enabled {
		return true
	}

	start, hasStart := utils.NormalizeDate(f.Start, utils.BoundaryStart)
	end, hasEnd := utils.NormalizeDate(f.End, utils.BoundaryEnd)
	if !hasStart && !hasEnd {
		return true
	}
	// An inverted range is empty and can overlap nothing.
	if hasStart && hasEnd && start.After(end) {
		return false
	}

	cs, ok := utils.NormalizeDate(candidateStart, utils.BoundaryStart)
	if !ok {
		return false
	}
	ce, ok := utils.NormalizeDate(candidateEnd, utils.BoundaryEnd)
	if !ok {
		ce = utils.AtBoundary(cs, utils.BoundaryEnd)
	}

	switch {
	case hasStart && hasEnd:
		return !cs.After(end) && !ce.Before(start)
	case hasStart:
		// Bookings already in progress when the range begins still count.
		return !cs.Before(start) || !ce.Before(start)
	default:
		return !cs.After(end)
	}
}

// MatchesBooking applies the range filter to a booking's stay dates.
func MatchesBooking(b domain.Booking, f domain.DateRangeFilter) bool {
	return MatchesRange(b.CheckIn, b.CheckOut, f)
}
