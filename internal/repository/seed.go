package repository

import (
	"context"
	"log"

	"github.com/truerooha/coworking-backend/internal/model"
)

// DefaultAdminUsername is the bootstrap administrator created the first
// time the user directory is empty, so the admin views are reachable on
// a fresh install.
const DefaultAdminUsername = "true_rooha"

// SeedRooms returns the stock rooms used on first start and by the
// reset endpoint. Ids are stable across resets so existing bookings
// keep referencing the same rooms.
func SeedRooms() []model.Room {
	return []model.Room{
		{
			ID:          "1",
			Name:        "Conference hall",
			Image:       "https://i.postimg.cc/WtpDfQPt/room.jpg",
			Capacity:    10,
			Description: "Large conference hall with video call equipment",
		},
		{
			ID:          "2",
			Name:        "Zoom room 1",
			Image:       "https://i.postimg.cc/8JNFGYJK/zoom1.jpg",
			Capacity:    1,
			Description: "Cozy single room for video calls",
		},
		{
			ID:          "3",
			Name:        "Zoom room 2",
			Image:       "https://i.postimg.cc/8JNFGYJK/zoom1.jpg",
			Capacity:    1,
			Description: "Cozy single room for video calls",
		},
	}
}

// EnsureSeedData bootstraps an empty deployment: when no users exist it
// creates the default administrator, and when no rooms exist it loads
// the stock rooms. Non-empty directories are left untouched, so this is
// safe to run on every startup.
func EnsureSeedData(ctx context.Context, rooms RoomStore, users UserStore) error {
	existing, err := users.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		if _, err := users.Create(ctx, DefaultAdminUsername, true); err != nil {
			return err
		}
		log.Printf("seeded default admin user %q", DefaultAdminUsername)
	}

	rs, err := rooms.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		if err := rooms.Reset(ctx, SeedRooms()); err != nil {
			return err
		}
		log.Printf("seeded %d rooms", len(SeedRooms()))
	}
	return nil
}
