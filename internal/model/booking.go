package model

import "time"

// Booking mirrors the `bookings` table. Date is a "YYYY-MM-DD" calendar
// day and the times are zero-padded 24-hour "HH:MM" strings within that
// day, so lexicographic comparison matches chronological order. A
// booking is never updated or cancelled once created.
//
// Fields:
//  ID        – UUID assigned on insert.
//  RoomID    – references Room.ID.
//  Date      – calendar day of the booking.
//  StartTime – inclusive start of the slot.
//  EndTime   – exclusive end of the slot; always later than StartTime.
//  UserName  – display name of the person who booked.
//  CreatedAt – timestamp of creation (UTC).
//  UpdatedAt – timestamp of last update (UTC).
type Booking struct {
	ID        string    `json:"id"`        // bookings.id
	RoomID    string    `json:"roomId"`    // bookings.room_id
	Date      string    `json:"date"`      // bookings.date
	StartTime string    `json:"startTime"` // bookings.start_time
	EndTime   string    `json:"endTime"`   // bookings.end_time
	UserName  string    `json:"userName"`  // bookings.user_name
	CreatedAt time.Time `json:"createdAt"` // bookings.created_at
	UpdatedAt time.Time `json:"updatedAt"` // bookings.updated_at
}

// UpcomingBooking is the row shape returned by the upcoming-bookings
// endpoint. RoomName is joined in from the rooms table; Status is
// always "active" because cancellation does not exist in this system.
type UpcomingBooking struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}
