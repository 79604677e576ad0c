package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/truerooha/coworking-backend/internal/model"
	"github.com/truerooha/coworking-backend/internal/repository"
)

func roomHandler(t *testing.T) (*RoomHandler, *repository.MemoryStore) {
	t.Helper()
	s := newStore(t)
	return NewRoomHandler(s.Rooms(), s.Bookings(), testClock), s
}

func TestListRoomsVacant(t *testing.T) {
	h, _ := roomHandler(t)
	rec := do(t, h.ListRooms, http.MethodGet, "/api/rooms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var views []model.RoomView
	decode(t, rec, &views)
	if len(views) != 3 {
		t.Fatalf("expected the 3 seed rooms, got %d", len(views))
	}
	for _, v := range views {
		if v.IsOccupied || v.CurrentBooking != nil {
			t.Fatalf("room %s should be vacant: %+v", v.ID, v)
		}
	}
}

func TestListRoomsOccupancy(t *testing.T) {
	h, s := roomHandler(t)
	ctx := context.Background()
	// Clock is fixed at 2025-06-10 14:00. Room 2 is mid-booking, room 3's
	// slot has just ended (the half-open interval excludes 14:00).
	for _, b := range []model.Booking{
		{RoomID: "2", Date: "2025-06-10", StartTime: "13:30", EndTime: "14:30", UserName: "jane"},
		{RoomID: "3", Date: "2025-06-10", StartTime: "13:00", EndTime: "14:00", UserName: "bob"},
	} {
		b := b
		if err := s.Bookings().Create(ctx, &b); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	rec := do(t, h.ListRooms, http.MethodGet, "/api/rooms", "")
	var views []model.RoomView
	decode(t, rec, &views)
	byID := map[string]model.RoomView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	if !byID["2"].IsOccupied {
		t.Fatal("room 2 should be occupied at 14:00")
	}
	cb := byID["2"].CurrentBooking
	if cb == nil || cb.User != "jane" || cb.StartTime != "13:30" || cb.EndTime != "14:30" {
		t.Fatalf("wrong current booking: %+v", cb)
	}
	if byID["3"].IsOccupied {
		t.Fatal("room 3's booking ended exactly at 14:00 and must not count")
	}
	if byID["1"].IsOccupied {
		t.Fatal("room 1 has no bookings")
	}
}

func TestListRoomsDebug(t *testing.T) {
	h, _ := roomHandler(t)
	rec := do(t, h.ListRooms, http.MethodGet, "/api/rooms?debug=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Rooms []model.RoomView `json:"rooms"`
		Debug struct {
			Date    string `json:"date"`
			Now     string `json:"now"`
			PerRoom []struct {
				RoomID string `json:"roomId"`
			} `json:"perRoom"`
		} `json:"debug"`
	}
	decode(t, rec, &body)
	if body.Debug.Date != "2025-06-10" || body.Debug.Now != "14:00" {
		t.Fatalf("debug block = %+v", body.Debug)
	}
	if len(body.Rooms) != 3 || len(body.Debug.PerRoom) != 3 {
		t.Fatalf("expected 3 rooms in both lists, got %d and %d",
			len(body.Rooms), len(body.Debug.PerRoom))
	}
}

func TestGetRoom(t *testing.T) {
	h, _ := roomHandler(t)
	rec := do(t, h.GetRoom, http.MethodGet, "/api/rooms/1", "", "id", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var v model.RoomView
	decode(t, rec, &v)
	if v.ID != "1" || v.Name == "" {
		t.Fatalf("unexpected room: %+v", v)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	h, _ := roomHandler(t)
	rec := do(t, h.GetRoom, http.MethodGet, "/api/rooms/nope", "", "id", "nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	decode(t, rec, &body)
	if body.Error != "Room not found" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestResetRooms(t *testing.T) {
	h, s := roomHandler(t)
	rec := do(t, h.ResetRooms, http.MethodPost, "/api/rooms/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	rooms, err := s.Rooms().ListAll(context.Background())
	if err != nil || len(rooms) != 3 {
		t.Fatalf("seed rooms missing after reset: %v %d", err, len(rooms))
	}
}
