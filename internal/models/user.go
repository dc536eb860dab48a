package models

// User is the account record the backend returns on login, register and
// profile update. It is persisted client-side, serialized, alongside the
// session token.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
