package booking

import (
	"fmt"

	"github.com/truerooha/coworking-backend/internal/model"
)

// ValidationError marks a malformed booking request. Handlers translate
// it into an HTTP 400 response; it is never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError is returned when a candidate booking overlaps an
// existing one for the same room and date. BookedBy carries the display
// name of the existing booking's owner so the client can show who holds
// the slot. Handlers translate it into an HTTP 409 response.
type ConflictError struct {
	BookedBy string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room already booked by %s", e.BookedBy)
}

// Validate checks a candidate booking before any conflict detection.
// A validation failure is a distinct error kind from a conflict: it
// means the request itself is malformed, regardless of what bookings
// already exist.
func Validate(b model.Booking) error {
	switch {
	case b.RoomID == "" || b.Date == "" || b.StartTime == "" || b.EndTime == "" || b.UserName == "":
		return &ValidationError{Reason: "roomId, date, startTime, endTime, userName are required"}
	case !ValidDate(b.Date):
		return &ValidationError{Reason: "date must be formatted as YYYY-MM-DD"}
	case !ValidTime(b.StartTime) || !ValidTime(b.EndTime):
		return &ValidationError{Reason: "startTime and endTime must be formatted as HH:MM"}
	case b.StartTime >= b.EndTime:
		return &ValidationError{Reason: "endTime must be later than startTime"}
	}
	return nil
}

// FindConflict scans existing bookings in the order the store returned
// them and reports the first one that overlaps the candidate, or nil
// when the slot is free. Callers pass bookings already filtered to the
// candidate's room and date. The "first" conflict is simply the first
// row in retrieval order; no earliest-interval tie-break is promised.
func FindConflict(candidate model.Booking, existing []model.Booking) *model.Booking {
	for i := range existing {
		if Overlaps(candidate.StartTime, candidate.EndTime, existing[i].StartTime, existing[i].EndTime) {
			return &existing[i]
		}
	}
	return nil
}
