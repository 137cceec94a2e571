package utils

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Boundary selects which end of the day a normalized date snaps to.
// Snapping to the first or last instant of the day is what makes range
// comparisons inclusive on both ends.
type Boundary int

const (
	BoundaryStart Boundary = iota // 00:00:00.000
	BoundaryEnd                   // 23:59:59.999
)

// TimeConvertible is the shape of SDK timestamp wrappers that expose a
// zero-argument date accessor.
type TimeConvertible interface {
	ToDate() time.Time
}

// isoLayouts are tried in order for general date-string parsing.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate converts a heterogeneous date value into a time.Time without
// touching the time-of-day component. Accepted shapes, tried in order:
// a time value (or pointer to one), a timestamp wrapper with a ToDate
// accessor, an ISO 8601 string, a dd/mm/yyyy or dd-mm-yyyy string, and
// numeric epoch milliseconds. Anything else reports ok=false; it never
// panics on bad input.
func ParseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case TimeConvertible:
		t := v.ToDate()
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case string:
		return parseDateString(v)
	case int:
		return fromEpochMillis(int64(v))
	case int64:
		return fromEpochMillis(v)
	case float64:
		return fromEpochMillis(int64(v))
	case json.Number:
		millis, err := v.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return fromEpochMillis(millis)
	default:
		return time.Time{}, false
	}
}

// NormalizeDate parses a heterogeneous date value and snaps it to the
// requested day boundary. Unparseable input reports ok=false; callers
// treat that as "cannot place on the timeline".
func NormalizeDate(value any, boundary Boundary) (time.Time, bool) {
	t, ok := ParseDate(value)
	if !ok {
		return time.Time{}, false
	}
	return AtBoundary(t, boundary), true
}

// AtBoundary snaps an instant to the first or last moment of its day.
func AtBoundary(t time.Time, boundary Boundary) time.Time {
	year, month, day := t.Date()
	if boundary == BoundaryEnd {
		return time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return parseDayFirst(s)
}

// parseDayFirst handles the localized dd/mm/yyyy and dd-mm-yyyy patterns.
func parseDayFirst(s string) (time.Time, bool) {
	sep := "/"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1000 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject rollovers like 31/02/2024.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func fromEpochMillis(millis int64) (time.Time, bool) {
	if millis <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(millis).UTC(), true
}
