package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/truerooha/coworking-backend/internal/booking"
	"github.com/truerooha/coworking-backend/internal/model"
)

// BookingRepo is the MySQL-backed BookingStore.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts b unless it overlaps an existing booking for the same
// room and date. The whole sequence runs in one transaction that first
// locks the room row with SELECT ... FOR UPDATE, so concurrent creates
// for the same room serialize and cannot both pass the conflict check.
// The lock doubles as the room-existence check.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var roomID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM rooms WHERE id=? FOR UPDATE", b.RoomID).Scan(&roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRoomNotFound
	}
	if err != nil {
		return err
	}

	existing, err := listByRoomAndDateTx(ctx, tx, b.RoomID, b.Date)
	if err != nil {
		return err
	}
	if c := booking.FindConflict(*b, existing); c != nil {
		return &booking.ConflictError{BookedBy: c.UserName}
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (id, room_id, date, start_time, end_time, user_name, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		b.ID, b.RoomID, b.Date, b.StartTime, b.EndTime, b.UserName, b.CreatedAt, b.UpdatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

const bookingColumns = "id, room_id, date, start_time, end_time, user_name, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.RoomID, &b.Date, &b.StartTime, &b.EndTime,
		&b.UserName, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func listByRoomAndDateTx(ctx context.Context, tx *sql.Tx, roomID, date string) ([]model.Booking, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE room_id=? AND date=? ORDER BY start_time",
		roomID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListByRoomAndDate returns the room's bookings for one day ordered by
// start time.
func (r *BookingRepo) ListByRoomAndDate(ctx context.Context, roomID, date string) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE room_id=? AND date=? ORDER BY start_time",
		roomID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListUpcomingByUser returns the user's not-yet-ended bookings from now
// onward: either on a later day, or later today with an end time still
// ahead. Room names are joined in; a booking whose room was removed
// keeps an empty name rather than disappearing from the list.
func (r *BookingRepo) ListUpcomingByUser(ctx context.Context, userName, today, now string) ([]model.UpcomingBooking, error) {
	const q = `SELECT b.id, b.room_id, COALESCE(r.name, ''), b.date, b.start_time, b.end_time
	           FROM bookings b
	           LEFT JOIN rooms r ON r.id = b.room_id
	           WHERE b.user_name = ? AND (b.date > ? OR (b.date = ? AND b.end_time > ?))
	           ORDER BY b.date, b.start_time`
	rows, err := r.DB.QueryContext(ctx, q, userName, today, today, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.UpcomingBooking, 0)
	for rows.Next() {
		var u model.UpcomingBooking
		if err := rows.Scan(&u.ID, &u.RoomID, &u.RoomName, &u.Date, &u.StartTime, &u.EndTime); err != nil {
			return nil, err
		}
		u.Status = "active"
		out = append(out, u)
	}
	return out, rows.Err()
}
