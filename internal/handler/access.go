package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/truerooha/coworking-backend/internal/model"
	"github.com/truerooha/coworking-backend/internal/repository"
)

// AccessHandler answers "may this username use the system, and is it an
// admin". There are no sessions or credentials; the user directory is a
// plain allow-list.
type AccessHandler struct {
	Users repository.UserStore
	// Strict selects the empty-username behavior: true rejects the
	// request with a validation error, false treats it as an unknown
	// user and denies access with a 200. Both variants shipped at some
	// point, so the choice is configuration rather than code.
	Strict bool
}

func NewAccessHandler(users repository.UserStore, strict bool) *AccessHandler {
	if users == nil {
		panic("nil store passed to NewAccessHandler")
	}
	return &AccessHandler{Users: users, Strict: strict}
}

// CheckAccess handles POST /api/auth/check. Unknown usernames are a
// deny, not an error. A store failure is also a deny: for an access
// check, failing closed beats failing open.
func (h *AccessHandler) CheckAccess(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username == "" {
		if h.Strict {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
		}
		return c.JSON(http.StatusOK, echo.Map{"allowed": false, "isAdmin": false})
	}

	u, err := h.Users.GetByUsername(c.Request().Context(), body.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("access check for %q: %v", body.Username, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"allowed": false, "isAdmin": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"allowed":  true,
		"isAdmin":  u.IsAdmin,
		"username": u.Username,
	})
}

// userEntry is the row shape of the user listing.
type userEntry struct {
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}

// ListUsers handles GET /api/auth/users. The endpoint is meant for
// admins but the system has no enforcement layer; the frontend gates it
// behind the isAdmin flag from CheckAccess.
func (h *AccessHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("list users: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]userEntry, 0, len(users))
	for _, u := range users {
		out = append(out, toEntry(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

// CreateUser handles POST /api/auth/users. isAdmin defaults to false
// when omitted; an existing username is a 409 and leaves the directory
// untouched.
func (h *AccessHandler) CreateUser(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}

	u, err := h.Users.Create(c.Request().Context(), body.Username, body.IsAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		log.Printf("create user %q: %v", body.Username, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": toEntry(u)})
}

func toEntry(u model.User) userEntry {
	return userEntry{
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
