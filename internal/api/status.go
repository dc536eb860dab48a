package api

import (
	"context"
	"net/http"
)

// HealthStatus is the backend liveness response.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DBStatus reports whether the backend's database is reachable and seeded.
type DBStatus struct {
	PhonesTableExists bool   `json:"phones_table_exists"`
	PhoneCount        int    `json:"phone_count"`
	DatabaseFile      string `json:"database_file"`
	FileExists        bool   `json:"file_exists"`
}

// Health checks backend liveness.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	err := c.do(ctx, http.MethodGet, "/health", "", nil, &status)
	return status, err
}

// DBCheck verifies the backend database.
func (c *Client) DBCheck(ctx context.Context) (DBStatus, error) {
	var status DBStatus
	err := c.do(ctx, http.MethodGet, "/db-check", "", nil, &status)
	return status, err
}
