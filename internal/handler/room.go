package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truerooha/coworking-backend/internal/booking"
	"github.com/truerooha/coworking-backend/internal/clock"
	"github.com/truerooha/coworking-backend/internal/model"
	"github.com/truerooha/coworking-backend/internal/repository"
)

// RoomHandler serves the room directory with occupancy derived from
// today's bookings at request time.
type RoomHandler struct {
	Rooms    repository.RoomStore
	Bookings repository.BookingStore
	Clock    clock.Clock
}

func NewRoomHandler(rooms repository.RoomStore, bookings repository.BookingStore, clk clock.Clock) *RoomHandler {
	if rooms == nil || bookings == nil || clk == nil {
		panic("nil dependency passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms, Bookings: bookings, Clock: clk}
}

// roomDebug is the per-room diagnostic block returned when the list
// endpoint is called with ?debug=1. It shows exactly which bookings the
// occupancy computation considered.
type roomDebug struct {
	RoomID   string          `json:"roomId"`
	Bookings []model.Booking `json:"bookings"`
}

// ListRooms handles GET /api/rooms. Every room is returned with its
// occupancy resolved against today's bookings at the current instant;
// stored records carry no occupancy at all. With ?debug=1 the response
// additionally carries the date, time and bookings the computation saw.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	ctx := c.Request().Context()
	rooms, err := h.Rooms.ListAll(ctx)
	if err != nil {
		log.Printf("list rooms: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	today := h.Clock.Today()
	now := h.Clock.TimeOfDay()
	debug := c.QueryParam("debug") == "1" || c.QueryParam("debug") == "true"

	views := make([]model.RoomView, 0, len(rooms))
	var diag []roomDebug
	for _, rm := range rooms {
		todays, err := h.Bookings.ListByRoomAndDate(ctx, rm.ID, today)
		if err != nil {
			log.Printf("list bookings for room %s: %v", rm.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		views = append(views, booking.Resolve(rm, todays, now))
		if debug {
			diag = append(diag, roomDebug{RoomID: rm.ID, Bookings: todays})
		}
	}

	if debug {
		return c.JSON(http.StatusOK, echo.Map{
			"rooms": views,
			"debug": echo.Map{"date": today, "now": now, "perRoom": diag},
		})
	}
	return c.JSON(http.StatusOK, views)
}

// GetRoom handles GET /api/rooms/:id, returning a single room with its
// occupancy resolved, or 404 for an unknown id.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	ctx := c.Request().Context()
	rm, err := h.Rooms.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		log.Printf("get room: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	todays, err := h.Bookings.ListByRoomAndDate(ctx, rm.ID, h.Clock.Today())
	if err != nil {
		log.Printf("list bookings for room %s: %v", rm.ID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, booking.Resolve(rm, todays, h.Clock.TimeOfDay()))
}

// ResetRooms handles POST /api/rooms/reset, replacing the room
// directory with the stock seed rooms. Bookings are kept; seed room ids
// are stable across resets.
func (h *RoomHandler) ResetRooms(c echo.Context) error {
	if err := h.Rooms.Reset(c.Request().Context(), repository.SeedRooms()); err != nil {
		log.Printf("reset rooms: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Rooms reset successfully"})
}
