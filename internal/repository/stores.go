// Package repository persists rooms, bookings and users. The store
// interfaces are the persistence boundary of the system: the MySQL
// repositories implement them for production and the in-memory store
// implements them for tests. Handlers depend only on the interfaces and
// receive their stores from the process entry point; there is no shared
// global connection state.
package repository

import (
	"context"

	"github.com/truerooha/coworking-backend/internal/model"
)

// RoomStore is the room directory.
type RoomStore interface {
	// ListAll returns every room ordered by id.
	ListAll(ctx context.Context) ([]model.Room, error)
	// GetByID returns one room or ErrRoomNotFound.
	GetByID(ctx context.Context, id string) (model.Room, error)
	// Reset clears the directory and inserts the given rooms.
	Reset(ctx context.Context, rooms []model.Room) error
}

// BookingStore is the booking directory. Conflict detection lives
// inside Create so the check-then-insert sequence and its serialization
// cannot be separated by callers.
type BookingStore interface {
	// Create inserts an already-validated candidate unless it overlaps
	// an existing booking for the same room and date. On success the
	// candidate's ID and timestamps are filled in. Returns
	// *booking.ConflictError when the slot is taken and ErrRoomNotFound
	// when the room does not exist. The check and the insert are
	// serialized per room, so two concurrent creates cannot both pass
	// the conflict check.
	Create(ctx context.Context, b *model.Booking) error
	// ListByRoomAndDate returns the room's bookings for one day ordered
	// by start time.
	ListByRoomAndDate(ctx context.Context, roomID, date string) ([]model.Booking, error)
	// ListUpcomingByUser returns the user's not-yet-ended bookings from
	// now onward, ordered by (date, startTime) ascending, with room
	// names joined in.
	ListUpcomingByUser(ctx context.Context, userName, today, now string) ([]model.UpcomingBooking, error)
}

// UserStore is the user directory backing access checks.
type UserStore interface {
	// GetByUsername does an exact, case-sensitive lookup and returns
	// ErrUserNotFound for unknown names.
	GetByUsername(ctx context.Context, username string) (model.User, error)
	// ListAll returns every user ordered by creation time.
	ListAll(ctx context.Context) ([]model.User, error)
	// Create adds a user or returns ErrUsernameExists. The directory is
	// left untouched on failure.
	Create(ctx context.Context, username string, isAdmin bool) (model.User, error)
}
