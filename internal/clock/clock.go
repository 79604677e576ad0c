// Package clock provides the service's notion of "today" and "now".
// The location is explicit configuration rather than the host default,
// so occupancy and upcoming-booking results do not silently change when
// the process moves to a machine in another timezone.
package clock

import (
	"time"

	"github.com/truerooha/coworking-backend/internal/booking"
)

// Clock yields the current date and time of day in the formats the
// booking logic compares: "2006-01-02" and "15:04".
type Clock interface {
	Now() time.Time
	Today() string
	TimeOfDay() string
}

// Wall is a Clock bound to a fixed time.Location.
type Wall struct {
	loc *time.Location
}

// NewWall builds a wall clock for the named timezone ("Europe/Moscow",
// "UTC", "Local", ...). The name is validated once here at startup.
func NewWall(tz string) (*Wall, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &Wall{loc: loc}, nil
}

func (w *Wall) Now() time.Time    { return time.Now().In(w.loc) }
func (w *Wall) Today() string     { return w.Now().Format(booking.DateLayout) }
func (w *Wall) TimeOfDay() string { return w.Now().Format(booking.TimeLayout) }

// Fixed is a Clock pinned to a single instant, used in tests to make
// occupancy and upcoming-booking results deterministic.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time    { return f.T }
func (f Fixed) Today() string     { return f.T.Format(booking.DateLayout) }
func (f Fixed) TimeOfDay() string { return f.T.Format(booking.TimeLayout) }
