// Package session persists the backend-issued bearer token and the
// serialized user record in a signed cookie, under the same fixed keys the
// storefront has always used. Both are cleared together on logout or when
// the backend answers 401.
package session

import (
	"encoding/gob"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"phonetech/internal/models"
)

const (
	sessionName = "phonetech-session"

	keyToken = "auth_token"
	keyUser  = "user"
)

func init() {
	gob.Register(Flash{})
}

// Flash is a one-shot message surfaced on the next rendered page.
type Flash struct {
	Kind    string // success, error, warning, info
	Message string
}

// Manager wraps the cookie store behind the operations the handlers need.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(key []byte, secure bool) *Manager {
	store := sessions.NewCookieStore(key)
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// Get never fails fatally with a cookie store; a bad cookie yields a
	// fresh session.
	s, _ := m.store.Get(r, sessionName)
	return s
}

// Current returns the stored token and user, or ("", nil) when logged out.
// A user record that no longer parses is treated as logged out.
func (m *Manager) Current(r *http.Request) (string, *models.User) {
	s := m.get(r)

	token, _ := s.Values[keyToken].(string)
	raw, _ := s.Values[keyUser].(string)
	if token == "" || raw == "" {
		return "", nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Println("[SESSION] [ERROR] stored user record unreadable:", err)
		return "", nil
	}
	return token, &user
}

// Save stores the token and user together.
func (m *Manager) Save(r *http.Request, w http.ResponseWriter, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s := m.get(r)
	s.Values[keyToken] = token
	s.Values[keyUser] = string(raw)
	return s.Save(r, w)
}

// Clear removes the token and user together. The cookie itself survives so
// a flash queued on the same request still reaches the next page.
func (m *Manager) Clear(r *http.Request, w http.ResponseWriter) error {
	s := m.get(r)
	delete(s.Values, keyToken)
	delete(s.Values, keyUser)
	return s.Save(r, w)
}

// AddFlash queues a message for the next page render.
func (m *Manager) AddFlash(r *http.Request, w http.ResponseWriter, kind, message string) {
	s := m.get(r)
	s.AddFlash(Flash{Kind: kind, Message: message})
	if err := s.Save(r, w); err != nil {
		log.Println("[SESSION] [ERROR] flash save failed:", err)
	}
}

// Flashes drains queued messages.
func (m *Manager) Flashes(r *http.Request, w http.ResponseWriter) []Flash {
	s := m.get(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	if err := s.Save(r, w); err != nil {
		log.Println("[SESSION] [ERROR] flash drain save failed:", err)
	}
	return flashes
}

// IsAdmin reports whether the current user carries the administrator flag.
func (m *Manager) IsAdmin(r *http.Request) bool {
	_, user := m.Current(r)
	return user != nil && user.IsAdmin
}
