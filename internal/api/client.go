// Package api wraps every call to the upstream phone-retail REST backend.
// It attaches the bearer token when one is present and funnels authorization
// failures into the sentinel errors in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

// Client talks to the backend at a fixed base path, JSON bodies throughout.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration

	// OnUnauthorized, when set, runs on every 401 before the call returns
	// ErrAuthentication, so the owner of the stored session can clear it.
	OnUnauthorized func()
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}
}

// do issues one request. token may be empty for public endpoints. When out
// is non-nil the 2xx response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[API] [ERROR] %s %s id=%s: %v", method, path, requestID, err)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		log.Printf("[API] [ERROR] %s %s id=%s: session rejected (401)", method, path, requestID)
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrAuthentication)
	case http.StatusForbidden:
		log.Printf("[API] [ERROR] %s %s id=%s: forbidden (403)", method, path, requestID)
		return fmt.Errorf("%s %s: %w", method, path, ErrPermission)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Error
		}
		log.Printf("[API] [ERROR] %s %s id=%s: status %d: %s", method, path, requestID, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	log.Printf("[API] [INFO] %s %s id=%s: %d", method, path, requestID, resp.StatusCode)
	return nil
}
