package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/truerooha/coworking-backend/internal/model"
)

// UserRepo is the MySQL-backed UserStore.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetByUsername fetches a user by exact username. Lookups are
// case-sensitive on purpose; the username is the access key, not an
// email address, so no normalization is applied.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT username, is_admin, created_at, updated_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.Username, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// ListAll returns every user, oldest first.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT username, is_admin, created_at, updated_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a user and returns the stored record. The unique index
// on username turns races between duplicate creates into error 1062,
// reported as ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, username string, isAdmin bool) (model.User, error) {
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, is_admin, created_at, updated_at) VALUES (?,?,?,?)",
		username, isAdmin, now, now)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrUsernameExists
		}
		return model.User{}, err
	}
	return model.User{Username: username, IsAdmin: isAdmin, CreatedAt: now, UpdatedAt: now}, nil
}
