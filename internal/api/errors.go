package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Callers branch with errors.Is:
// ErrAuthentication means the session is expired and the user is logged out;
// ErrPermission means the action was refused but the session is still good;
// ErrNetwork means the request never completed.
var (
	ErrAuthentication = errors.New("authentication required")
	ErrPermission     = errors.New("permission denied")
	ErrNetwork        = errors.New("network failure")
)

// APIError is a business failure: a non-2xx response carrying an error body.
// Message is the backend's text, shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Message extracts the user-facing text from any client error.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	switch {
	case errors.Is(err, ErrAuthentication):
		return "Authentication required. Please login again."
	case errors.Is(err, ErrPermission):
		return "You do not have permission to perform this action."
	case errors.Is(err, ErrNetwork):
		return "Cannot reach the server. Please try again."
	}
	return err.Error()
}
