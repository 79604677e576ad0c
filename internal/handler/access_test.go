package handler

import (
	"net/http"
	"testing"

	"github.com/truerooha/coworking-backend/internal/repository"
)

type accessResponse struct {
	Allowed bool   `json:"allowed"`
	IsAdmin bool   `json:"isAdmin"`
	Error   string `json:"error"`
}

func TestCheckAccessSeededAdmin(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), true)
	rec := do(t, h.CheckAccess, http.MethodPost, "/api/auth/check",
		`{"username":"`+repository.DefaultAdminUsername+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body accessResponse
	decode(t, rec, &body)
	if !body.Allowed || !body.IsAdmin {
		t.Fatalf("seeded admin should be allowed admin, got %+v", body)
	}
}

func TestCheckAccessUnknownUser(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), true)
	rec := do(t, h.CheckAccess, http.MethodPost, "/api/auth/check", `{"username":"nobody"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown user is a deny, not an error; status = %d", rec.Code)
	}
	var body accessResponse
	decode(t, rec, &body)
	if body.Allowed || body.IsAdmin {
		t.Fatalf("unknown user must be denied, got %+v", body)
	}
}

func TestCheckAccessCaseSensitive(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), true)
	rec := do(t, h.CheckAccess, http.MethodPost, "/api/auth/check", `{"username":"TRUE_ROOHA"}`)
	var body accessResponse
	decode(t, rec, &body)
	if body.Allowed {
		t.Fatal("lookup must be case-sensitive")
	}
}

func TestCheckAccessEmptyUsernameStrict(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), true)
	rec := do(t, h.CheckAccess, http.MethodPost, "/api/auth/check", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("strict mode must reject an empty username, status = %d", rec.Code)
	}
}

func TestCheckAccessEmptyUsernameLenient(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), false)
	rec := do(t, h.CheckAccess, http.MethodPost, "/api/auth/check", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("lenient mode must answer 200, status = %d", rec.Code)
	}
	var body accessResponse
	decode(t, rec, &body)
	if body.Allowed || body.IsAdmin {
		t.Fatalf("lenient mode must still deny, got %+v", body)
	}
}

func TestCreateUserAndList(t *testing.T) {
	users := newStore(t).Users()
	h := NewAccessHandler(users, true)

	rec := do(t, h.CreateUser, http.MethodPost, "/api/auth/users", `{"username":"jane_smith"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h.ListUsers, http.MethodGet, "/api/auth/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list users status = %d", rec.Code)
	}
	var body struct {
		Users []struct {
			Username  string `json:"username"`
			IsAdmin   bool   `json:"isAdmin"`
			CreatedAt string `json:"createdAt"`
		} `json:"users"`
	}
	decode(t, rec, &body)
	if len(body.Users) != 2 {
		t.Fatalf("expected seeded admin plus new user, got %+v", body.Users)
	}
	for _, u := range body.Users {
		if u.CreatedAt == "" {
			t.Fatalf("missing createdAt: %+v", u)
		}
		if u.Username == "jane_smith" && u.IsAdmin {
			t.Fatal("isAdmin must default to false")
		}
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), true)
	rec := do(t, h.CreateUser, http.MethodPost, "/api/auth/users",
		`{"username":"`+repository.DefaultAdminUsername+`"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate username status = %d", rec.Code)
	}
}

func TestCreateUserEmptyUsername(t *testing.T) {
	h := NewAccessHandler(newStore(t).Users(), true)
	rec := do(t, h.CreateUser, http.MethodPost, "/api/auth/users", `{"username":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty username status = %d", rec.Code)
	}
}
