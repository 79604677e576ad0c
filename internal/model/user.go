package model

import "time"

// User represents an entry in the `users` table, which doubles as the
// access allow-list: a username that exists may use the system, and the
// IsAdmin flag grants the admin views. Usernames are matched exactly
// and case-sensitively. There are no passwords or sessions.
type User struct {
	Username  string    `json:"username"`  // users.username (unique key)
	IsAdmin   bool      `json:"isAdmin"`   // users.is_admin
	CreatedAt time.Time `json:"createdAt"` // users.created_at
	UpdatedAt time.Time `json:"updatedAt"` // users.updated_at
}
