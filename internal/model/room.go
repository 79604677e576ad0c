package model

// Room represents a bookable room as stored in the `rooms` table.
// Occupancy is never part of the stored record; it is derived per
// request from the day's bookings (see RoomView).
//
// Fields:
//  ID          – unique room identifier, referenced by bookings.
//  Name        – display name shown in listings.
//  Image       – URL of the room's photo.
//  Capacity    – number of seats, always positive.
//  Description – free-text description.
type Room struct {
	ID          string `json:"id"`          // rooms.id
	Name        string `json:"name"`        // rooms.name
	Image       string `json:"image"`       // rooms.image
	Capacity    int    `json:"capacity"`    // rooms.capacity
	Description string `json:"description"` // rooms.description
}

// CurrentBooking is the slot occupying a room right now, shown on an
// occupied RoomView.
type CurrentBooking struct {
	User      string `json:"user"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RoomView is a Room enriched with occupancy computed for the current
// instant. IsOccupied and CurrentBooking are recomputed on every
// request and overwrite whatever a client may have cached; they are
// never read back from storage.
type RoomView struct {
	Room
	IsOccupied     bool            `json:"isOccupied"`
	CurrentBooking *CurrentBooking `json:"currentBooking,omitempty"`
}
