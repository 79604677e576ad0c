// This file defines sentinel errors shared by the store
// implementations. Higher layers match them with errors.Is to pick an
// HTTP status: ErrRoomNotFound and ErrUserNotFound map to 404,
// ErrUsernameExists to 409. Conflict and validation errors carry data
// and live in the booking package instead.
package repository

import "errors"

// ErrRoomNotFound is returned when a room id does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrUserNotFound is returned on access-check lookups for unknown
// usernames. Handlers treat it as a deny, not as a failure.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when creating a user whose username is
// already taken.
var ErrUsernameExists = errors.New("username already exists")
