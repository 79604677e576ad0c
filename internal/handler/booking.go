package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/truerooha/coworking-backend/internal/booking"
	"github.com/truerooha/coworking-backend/internal/clock"
	"github.com/truerooha/coworking-backend/internal/model"
	"github.com/truerooha/coworking-backend/internal/queue"
	"github.com/truerooha/coworking-backend/internal/repository"
)

// EventPublisher pushes booking lifecycle events to the message broker.
// It is optional: a nil publisher simply means no events.
type EventPublisher interface {
	BookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// BookingHandler creates bookings and lists a user's upcoming ones.
type BookingHandler struct {
	Bookings repository.BookingStore
	Clock    clock.Clock
	Events   EventPublisher
}

func NewBookingHandler(bookings repository.BookingStore, clk clock.Clock, events EventPublisher) *BookingHandler {
	if bookings == nil || clk == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Clock: clk, Events: events}
}

// CreateBooking handles POST /api/bookings. Validation failures are
// 400s and distinct from conflicts: a conflict is a well-formed request
// that lost the slot to an existing booking, answered with 409 and the
// holder's name. The store serializes the conflict check and insert per
// room, so concurrent requests cannot double-book.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var body struct {
		RoomID    string `json:"roomId"`
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		UserName  string `json:"userName"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	b := model.Booking{
		RoomID:    body.RoomID,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		UserName:  body.UserName,
	}
	if err := booking.Validate(b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.Bookings.Create(c.Request().Context(), &b); err != nil {
		var conflict *booking.ConflictError
		switch {
		case errors.As(err, &conflict):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":    "Room already booked for this time",
				"bookedBy": conflict.BookedBy,
			})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		default:
			log.Printf("create booking: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
	}

	if h.Events != nil {
		ev := queue.BookingCreatedEvent{
			BookingID: b.ID,
			RoomID:    b.RoomID,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			UserName:  b.UserName,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		}
		// Fire and forget; the booking is already committed and a dead
		// broker must not fail the request.
		go func() { _ = h.Events.BookingCreated(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "booking": b})
}

// ListUpcoming handles GET /api/bookings/me/upcoming?userName=... It
// returns the user's not-yet-ended bookings from now onward, ordered by
// date then start time. Identity is just the query parameter; there is
// no session to read it from.
func (h *BookingHandler) ListUpcoming(c echo.Context) error {
	userName := c.QueryParam("userName")
	if userName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userName is required"})
	}

	items, err := h.Bookings.ListUpcomingByUser(c.Request().Context(),
		userName, h.Clock.Today(), h.Clock.TimeOfDay())
	if err != nil {
		log.Printf("list upcoming bookings for %q: %v", userName, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": items})
}
