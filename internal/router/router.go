// Package router maps the booking API's URL space onto the handlers.
// All endpoints live under /api, mirroring what the frontend expects.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truerooha/coworking-backend/internal/handler"
)

// RegisterRoutes wires the endpoints that need no handler state: the
// health check and the JSON 404 for unknown routes.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", handler.Health)
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Route not found"})
	})
}

// RegisterRooms wires the room directory endpoints. cacheMW fronts the
// read endpoints with the Redis response cache; pass nil to serve them
// uncached.
func RegisterRooms(e *echo.Echo, h *handler.RoomHandler, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/api/rooms")
	if cacheMW != nil {
		g.GET("", h.ListRooms, cacheMW)
		g.GET("/:id", h.GetRoom, cacheMW)
	} else {
		g.GET("", h.ListRooms)
		g.GET("/:id", h.GetRoom)
	}
	g.POST("/reset", h.ResetRooms)
}

// RegisterAuth wires the access-check and user directory endpoints.
// None of them require authentication; the system trusts the frontend
// to gate the admin views on the isAdmin flag.
func RegisterAuth(e *echo.Echo, h *handler.AccessHandler) {
	g := e.Group("/api/auth")
	g.POST("/check", h.CheckAccess)
	g.GET("/users", h.ListUsers)
	g.POST("/users", h.CreateUser)
}

// RegisterBookings wires booking creation and the upcoming listing.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler) {
	g := e.Group("/api/bookings")
	g.POST("", h.CreateBooking)
	g.GET("/me/upcoming", h.ListUpcoming)
}
