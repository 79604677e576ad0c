// Package booking holds the slot logic shared by booking creation and
// room occupancy: overlap checks over same-day time intervals, the
// validation run before any conflict check, and the predicates deciding
// whether a booking is current or upcoming.
//
// All times are zero-padded 24-hour "HH:MM" strings and all dates are
// "YYYY-MM-DD", so plain string comparison matches chronological order
// and no parsing happens on the hot path. ValidTime and ValidDate guard
// that invariant at the boundary.
package booking

import "time"

const (
	// DateLayout is the wire and storage format for calendar days.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format for times of day.
	TimeLayout = "15:04"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) on the same day intersect. Touching intervals
// (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ValidTime reports whether s is a zero-padded "HH:MM" time of day.
// Unpadded forms like "9:30" are rejected because they would break
// lexicographic ordering.
func ValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour < 24 && minute < 60
}

// ValidDate reports whether s is a zero-padded "YYYY-MM-DD" calendar
// date. The round trip through time.Parse rejects both malformed input
// and unpadded variants the parser would otherwise tolerate.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}
