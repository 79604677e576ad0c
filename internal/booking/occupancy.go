package booking

import "github.com/truerooha/coworking-backend/internal/model"

// Current reports whether now falls inside [start, end). Unlike
// Overlaps, the left bound is inclusive: "now" is an instant rather
// than an interval, so a booking is current from the moment it starts
// and stops being current exactly at its end time.
func Current(start, end, now string) bool {
	return start <= now && now < end
}

// Resolve derives a room's occupancy view at the given time of day from
// the room's bookings for that day. The first current booking in
// retrieval order wins. Occupancy is always recomputed here; whatever a
// stored record or client might claim about isOccupied is discarded.
func Resolve(room model.Room, bookingsToday []model.Booking, now string) model.RoomView {
	view := model.RoomView{Room: room}
	for i := range bookingsToday {
		b := &bookingsToday[i]
		if Current(b.StartTime, b.EndTime, now) {
			view.IsOccupied = true
			view.CurrentBooking = &model.CurrentBooking{
				User:      b.UserName,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
			}
			break
		}
	}
	return view
}

// Upcoming reports whether b has not yet ended as of today/now: either
// it is on a later day, or it is later today and its end time has not
// passed. Bookings on past days never qualify.
func Upcoming(b model.Booking, today, now string) bool {
	return b.Date > today || (b.Date == today && b.EndTime > now)
}
