package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/truerooha/coworking-backend/internal/booking"
	"github.com/truerooha/coworking-backend/internal/model"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	if err := EnsureSeedData(context.Background(), s.Rooms(), s.Users()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func mustCreate(t *testing.T, s *MemoryStore, b model.Booking) model.Booking {
	t.Helper()
	if err := s.Bookings().Create(context.Background(), &b); err != nil {
		t.Fatalf("create booking %+v: %v", b, err)
	}
	return b
}

func TestEnsureSeedData(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	u, err := s.Users().GetByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("default admin missing: %v", err)
	}
	if !u.IsAdmin {
		t.Fatal("default user must be an admin")
	}

	rooms, err := s.Rooms().ListAll(ctx)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != len(SeedRooms()) {
		t.Fatalf("seeded %d rooms, want %d", len(rooms), len(SeedRooms()))
	}

	// Seeding again must not duplicate anything.
	if err := EnsureSeedData(ctx, s.Rooms(), s.Users()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	users, _ := s.Users().ListAll(ctx)
	if len(users) != 1 {
		t.Fatalf("second seed duplicated users: %d", len(users))
	}
}

func TestCreateBookingOnEmptyDay(t *testing.T) {
	s := seededStore(t)
	b := mustCreate(t, s, model.Booking{
		RoomID: "1", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00", UserName: "jane_smith",
	})
	if b.ID == "" {
		t.Fatal("create must assign an id")
	}
	if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
		t.Fatal("create must assign timestamps")
	}

	day, err := s.Bookings().ListByRoomAndDate(context.Background(), "1", "2025-06-10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(day) != 1 || day[0].ID != b.ID {
		t.Fatalf("inserted booking not visible: %+v", day)
	}
}

func TestCreateBookingAdjacentSlots(t *testing.T) {
	s := seededStore(t)
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00", UserName: "a"})
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "10:00", EndTime: "11:00", UserName: "b"})
}

func TestCreateBookingConflict(t *testing.T) {
	s := seededStore(t)
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "14:00", EndTime: "15:00", UserName: "holder"})

	b := model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "14:30", EndTime: "15:30", UserName: "late_comer"}
	err := s.Bookings().Create(context.Background(), &b)
	var conflict *booking.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.BookedBy != "holder" {
		t.Fatalf("conflict should name the existing owner, got %q", conflict.BookedBy)
	}

	// The rejected booking must not have been inserted.
	day, _ := s.Bookings().ListByRoomAndDate(context.Background(), "1", "2025-06-10")
	if len(day) != 1 {
		t.Fatalf("rejected booking leaked into store: %+v", day)
	}
}

func TestCreateBookingOtherRoomOrDate(t *testing.T) {
	s := seededStore(t)
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "14:00", EndTime: "15:00", UserName: "a"})
	// Same slot in another room and on another day is fine.
	mustCreate(t, s, model.Booking{RoomID: "2", Date: "2025-06-10", StartTime: "14:00", EndTime: "15:00", UserName: "b"})
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-11", StartTime: "14:00", EndTime: "15:00", UserName: "c"})
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	s := seededStore(t)
	b := model.Booking{RoomID: "no-such-room", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00", UserName: "x"}
	if err := s.Bookings().Create(context.Background(), &b); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestListUpcomingByUser(t *testing.T) {
	s := seededStore(t)
	const user = "jane_smith"
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-09", StartTime: "09:00", EndTime: "10:00", UserName: user})  // past day
	mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "08:00", EndTime: "09:00", UserName: user})  // ended today
	ongoing := mustCreate(t, s, model.Booking{RoomID: "2", Date: "2025-06-10", StartTime: "13:30", EndTime: "14:30", UserName: user})
	later := mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-10", StartTime: "16:00", EndTime: "17:00", UserName: user})
	tomorrow := mustCreate(t, s, model.Booking{RoomID: "1", Date: "2025-06-11", StartTime: "09:00", EndTime: "10:00", UserName: user})
	mustCreate(t, s, model.Booking{RoomID: "3", Date: "2025-06-11", StartTime: "09:00", EndTime: "10:00", UserName: "someone_else"})

	got, err := s.Bookings().ListUpcomingByUser(context.Background(), user, "2025-06-10", "14:00")
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	wantIDs := []string{ongoing.ID, later.ID, tomorrow.ID}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d upcoming bookings, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (order must be date, startTime)", i, got[i].ID, id)
		}
	}
	if got[0].RoomName != "Zoom room 1" {
		t.Fatalf("room name not joined in: %+v", got[0])
	}
	for _, u := range got {
		if u.Status != "active" {
			t.Fatalf("status = %q, want active", u.Status)
		}
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	if _, err := s.Users().Create(ctx, "jane_smith", false); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := s.Users().Create(ctx, "jane_smith", true); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	// The failed create must not have mutated the stored record.
	u, err := s.Users().GetByUsername(ctx, "jane_smith")
	if err != nil {
		t.Fatalf("lookup after duplicate create: %v", err)
	}
	if u.IsAdmin {
		t.Fatal("duplicate create overwrote the existing user")
	}
}

func TestRoomLookup(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	if _, err := s.Rooms().GetByID(ctx, "2"); err != nil {
		t.Fatalf("seeded room missing: %v", err)
	}
	if _, err := s.Rooms().GetByID(ctx, "99"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
