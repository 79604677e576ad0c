package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/truerooha/coworking-backend/internal/booking"
	"github.com/truerooha/coworking-backend/internal/model"
)

// MemoryStore implements the three store interfaces in memory. It is
// the old mock-data variant of this API collapsed into a test double:
// handler tests run against it instead of a database. A single mutex
// around booking creation gives it the same serialization guarantee the
// MySQL store gets from its per-room row lock.
//
// The interfaces all declare ListAll/Create methods with differing
// signatures, so one type cannot satisfy them directly; Rooms, Users
// and Bookings return facets over the shared state.
type MemoryStore struct {
	mu       sync.Mutex
	rooms    []model.Room
	bookings []model.Booking
	users    map[string]model.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]model.User)}
}

func (s *MemoryStore) Rooms() RoomStore       { return (*memoryRooms)(s) }
func (s *MemoryStore) Bookings() BookingStore { return (*memoryBookings)(s) }
func (s *MemoryStore) Users() UserStore       { return (*memoryUsers)(s) }

type memoryRooms MemoryStore

func (s *memoryRooms) ListAll(ctx context.Context) ([]model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *memoryRooms) GetByID(ctx context.Context, id string) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rm := range s.rooms {
		if rm.ID == id {
			return rm, nil
		}
	}
	return model.Room{}, ErrRoomNotFound
}

func (s *memoryRooms) Reset(ctx context.Context, rooms []model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = make([]model.Room, len(rooms))
	copy(s.rooms, rooms)
	return nil
}

type memoryBookings MemoryStore

// Create mirrors BookingRepo.Create: room existence, first-conflict
// scan, then insert, all under the store mutex.
func (s *memoryBookings) Create(ctx context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, rm := range s.rooms {
		if rm.ID == b.RoomID {
			found = true
			break
		}
	}
	if !found {
		return ErrRoomNotFound
	}

	existing := s.listByRoomAndDateLocked(b.RoomID, b.Date)
	if c := booking.FindConflict(*b, existing); c != nil {
		return &booking.ConflictError{BookedBy: c.UserName}
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *memoryBookings) listByRoomAndDateLocked(roomID, date string) []model.Booking {
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func (s *memoryBookings) ListByRoomAndDate(ctx context.Context, roomID, date string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listByRoomAndDateLocked(roomID, date), nil
}

func (s *memoryBookings) ListUpcomingByUser(ctx context.Context, userName, today, now string) ([]model.UpcomingBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make(map[string]string, len(s.rooms))
	for _, rm := range s.rooms {
		names[rm.ID] = rm.Name
	}
	out := make([]model.UpcomingBooking, 0)
	for _, b := range s.bookings {
		if b.UserName != userName || !booking.Upcoming(b, today, now) {
			continue
		}
		out = append(out, model.UpcomingBooking{
			ID:        b.ID,
			RoomID:    b.RoomID,
			RoomName:  names[b.RoomID],
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    "active",
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

type memoryUsers MemoryStore

func (s *memoryUsers) GetByUsername(ctx context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *memoryUsers) ListAll(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Username < out[j].Username
	})
	return out, nil
}

func (s *memoryUsers) Create(ctx context.Context, username string, isAdmin bool) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return model.User{}, ErrUsernameExists
	}
	now := time.Now().UTC()
	u := model.User{Username: username, IsAdmin: isAdmin, CreatedAt: now, UpdatedAt: now}
	s.users[username] = u
	return u, nil
}
