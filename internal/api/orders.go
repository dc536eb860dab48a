package api

import (
	"context"
	"fmt"
	"net/http"

	"phonetech/internal/models"
)

// OrderRequest is the payload for placing an order. The backend recomputes
// the total server-side; the client's quote is display only.
type OrderRequest struct {
	PhoneID         int    `json:"phone_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Quantity        int    `json:"quantity"`
	HouseNumber     string `json:"house_number"`
	StreetAddress   string `json:"street_address"`
	DeliveryCity    string `json:"delivery_city"`
	DeliveryState   string `json:"delivery_state"`
	DeliveryZip     string `json:"delivery_zip"`
	DeliveryCountry string `json:"delivery_country"`
	DeliveryNotes   string `json:"delivery_notes,omitempty"`
}

// CreateOrder places an order for the authenticated user and returns the
// new order id.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (int, error) {
	var envelope struct {
		OrderID int `json:"order_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &envelope); err != nil {
		return 0, err
	}
	return envelope.OrderID, nil
}

// ListOrders fetches every order in the system. Admin token required.
func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var envelope struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Orders == nil {
		envelope.Orders = []models.Order{}
	}
	return envelope.Orders, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Admin token
// required.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, id int, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", id), token, body, nil)
}

// DeleteOrder removes an order permanently. Admin token required.
func (c *Client) DeleteOrder(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), token, nil, nil)
}

// UserOrders fetches the authenticated user's own order history.
func (c *Client) UserOrders(ctx context.Context, token string) ([]models.Order, error) {
	var envelope struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/orders", token, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Orders == nil {
		envelope.Orders = []models.Order{}
	}
	return envelope.Orders, nil
}
