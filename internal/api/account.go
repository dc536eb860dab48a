package api

import (
	"context"
	"net/http"

	"phonetech/internal/models"
)

// Credentials is what the backend hands out on login, register and profile
// update: a fresh opaque session token plus the user record to persist
// beside it.
type Credentials struct {
	Token string      `json:"session_token"`
	User  models.User `json:"user"`
}

// Login exchanges username and password for a session.
func (c *Client) Login(ctx context.Context, username, password string) (Credentials, error) {
	body := map[string]string{"username": username, "password": password}
	var creds Credentials
	err := c.do(ctx, http.MethodPost, "/login", "", body, &creds)
	return creds, err
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, username, email, password string) (Credentials, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var creds Credentials
	err := c.do(ctx, http.MethodPost, "/register", "", body, &creds)
	return creds, err
}

// UpdateProfile changes username and email. The backend rotates the session
// token, so the caller must persist the returned credentials.
func (c *Client) UpdateProfile(ctx context.Context, token, username, email string) (Credentials, error) {
	body := map[string]string{"username": username, "email": email}
	var creds Credentials
	err := c.do(ctx, http.MethodPut, "/user/profile", token, body, &creds)
	return creds, err
}

// Logout invalidates the session server-side. The stored session is cleared
// by the caller regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/logout", token, nil, nil)
}
