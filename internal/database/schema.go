package database

import (
	"context"
	"database/sql"
	"strings"
)

// Init creates the tables and indexes the service relies on. All
// statements are idempotent, so Init runs on every startup.
//
// Uniqueness on rooms.id and users.username comes from the primary
// keys. The composite bookings index is non-unique and exists for
// same-room-same-date lookups; interval overlap has no natural unique
// key, so conflict prevention is handled by the per-room lock in the
// booking repository instead.
func Init(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			id          VARCHAR(64)  NOT NULL,
			name        VARCHAR(255) NOT NULL,
			image       VARCHAR(512) NOT NULL DEFAULT '',
			capacity    INT          NOT NULL,
			description TEXT         NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id         CHAR(36)     NOT NULL,
			room_id    VARCHAR(64)  NOT NULL,
			date       CHAR(10)     NOT NULL,
			start_time CHAR(5)      NOT NULL,
			end_time   CHAR(5)      NOT NULL,
			user_name  VARCHAR(255) NOT NULL,
			created_at DATETIME     NOT NULL,
			updated_at DATETIME     NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS users (
			username   VARCHAR(64) NOT NULL,
			is_admin   TINYINT(1)  NOT NULL DEFAULT 0,
			created_at DATETIME    NOT NULL,
			updated_at DATETIME    NOT NULL,
			PRIMARY KEY (username)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	// MySQL has no CREATE INDEX IF NOT EXISTS; error 1061 means the
	// index already exists and is fine to ignore.
	const idx = `CREATE INDEX idx_bookings_room_date ON bookings (room_id, date, start_time, end_time)`
	if _, err := db.ExecContext(ctx, idx); err != nil && !strings.Contains(err.Error(), "1061") {
		return err
	}
	return nil
}
