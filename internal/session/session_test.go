package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"phonetech/internal/models"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

// roundTrip replays the cookies written by a previous response onto a new
// request, the way a browser would.
func roundTrip(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSaveThenCurrent(t *testing.T) {
	m := NewManager(testKey, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	user := models.User{ID: 7, Username: "admin", Email: "admin@example.com", IsAdmin: true}
	if err := m.Save(req, rec, "tok-123", user); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	next := roundTrip(t, rec)
	token, got := m.Current(next)
	if token != "tok-123" {
		t.Fatalf("expected stored token, got %q", token)
	}
	if got == nil || got.Username != "admin" || !got.IsAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
	if !m.IsAdmin(next) {
		t.Fatal("expected IsAdmin for admin user")
	}
}

func TestClearRemovesTokenAndUserTogether(t *testing.T) {
	m := NewManager(testKey, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := m.Save(req, rec, "tok-123", models.User{ID: 1, Username: "u"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	authed := roundTrip(t, rec)
	rec2 := httptest.NewRecorder()
	if err := m.Clear(authed, rec2); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	cleared := roundTrip(t, rec2)
	token, user := m.Current(cleared)
	if token != "" || user != nil {
		t.Fatalf("expected logged-out state, got token=%q user=%+v", token, user)
	}
}

func TestCurrentWithoutSessionIsLoggedOut(t *testing.T) {
	m := NewManager(testKey, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token, user := m.Current(req); token != "" || user != nil {
		t.Fatal("fresh request must be logged out")
	}
	if m.IsAdmin(req) {
		t.Fatal("fresh request must not be admin")
	}
}

func TestFlashesDrainOnce(t *testing.T) {
	m := NewManager(testKey, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	m.AddFlash(req, rec, "success", "Phone deleted!")

	next := roundTrip(t, rec)
	rec2 := httptest.NewRecorder()
	flashes := m.Flashes(next, rec2)
	if len(flashes) != 1 || flashes[0].Message != "Phone deleted!" {
		t.Fatalf("unexpected flashes: %+v", flashes)
	}

	again := roundTrip(t, rec2)
	if rest := m.Flashes(again, httptest.NewRecorder()); len(rest) != 0 {
		t.Fatalf("flashes must drain, got %+v", rest)
	}
}
