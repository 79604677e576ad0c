package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/truerooha/coworking-backend/internal/model"
)

// RoomRepo is the MySQL-backed RoomStore.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// ListAll returns every room ordered by id.
func (r *RoomRepo) ListAll(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, image, capacity, description FROM rooms ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Image, &rm.Capacity, &rm.Description); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

// GetByID fetches a single room by id.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (model.Room, error) {
	var rm model.Room
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, image, capacity, description FROM rooms WHERE id=? LIMIT 1",
		id).Scan(&rm.ID, &rm.Name, &rm.Image, &rm.Capacity, &rm.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// Reset replaces the whole room directory with the given rooms in one
// transaction. Bookings are left alone; they reference rooms by id and
// the seed rooms keep their ids across resets.
func (r *RoomRepo) Reset(ctx context.Context, rooms []model.Room) error {
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
	if _, err := tx.ExecContext(ctx, "DELETE FROM rooms"); err != nil {
		return err
	}
	for _, rm := range rooms {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO rooms (id, name, image, capacity, description) VALUES (?,?,?,?,?)",
			rm.ID, rm.Name, rm.Image, rm.Capacity, rm.Description); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
