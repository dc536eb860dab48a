package api

import (
	"context"
	"fmt"
	"net/http"

	"phonetech/internal/models"
)

// ListPhones fetches the full catalog. Public endpoint, no token.
func (c *Client) ListPhones(ctx context.Context) ([]models.Phone, error) {
	var envelope struct {
		Phones []models.Phone `json:"phones"`
	}
	if err := c.do(ctx, http.MethodGet, "/phones", "", nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Phones == nil {
		envelope.Phones = []models.Phone{}
	}
	return envelope.Phones, nil
}

// GetPhone fetches one catalog entry by id.
func (c *Client) GetPhone(ctx context.Context, id int) (models.Phone, error) {
	var phone models.Phone
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/phones/%d", id), "", nil, &phone)
	return phone, err
}

// CreatePhone adds a phone to the inventory. Admin token required.
func (c *Client) CreatePhone(ctx context.Context, token string, phone models.Phone) (int, error) {
	var envelope struct {
		PhoneID int `json:"phone_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/phones", token, phone, &envelope); err != nil {
		return 0, err
	}
	return envelope.PhoneID, nil
}

// UpdatePhone overwrites an existing phone. Admin token required.
func (c *Client) UpdatePhone(ctx context.Context, token string, id int, phone models.Phone) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/phones/%d", id), token, phone, nil)
}

// DeletePhone removes a phone from the inventory. Admin token required.
func (c *Client) DeletePhone(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/phones/%d", id), token, nil, nil)
}
