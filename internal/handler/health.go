// Package handler exposes the HTTP handlers of the booking API. Each
// handler group holds the store interfaces and the clock it needs;
// nothing here touches the database driver or global state directly.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint polled by load balancers and the
// frontend. It reports OK with the current server time.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
