package models

import "time"

// Order statuses accepted by the backend.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderStatuses lists every valid status in display order.
var OrderStatuses = []string{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}

// ValidOrderStatus reports whether s is a status the backend accepts.
func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is an order row as returned by the backend, including the phone
// columns joined in by the order listing endpoints.
type Order struct {
	ID              int     `json:"id"`
	PhoneID         int     `json:"phone_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	Quantity        int     `json:"quantity"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	HouseNumber     string  `json:"house_number"`
	StreetAddress   string  `json:"street_address"`
	DeliveryCity    string  `json:"delivery_city"`
	DeliveryState   string  `json:"delivery_state"`
	DeliveryZip     string  `json:"delivery_zip"`
	DeliveryCountry string  `json:"delivery_country"`
	DeliveryNotes   string  `json:"delivery_notes,omitempty"`
	CreatedAt       string  `json:"created_at"`

	// Joined phone columns.
	Brand   string `json:"brand,omitempty"`
	Model   string `json:"model,omitempty"`
	Storage string `json:"storage,omitempty"`
	Color   string `json:"color,omitempty"`
}

// createdAtLayouts covers the timestamp forms the backend has been seen to
// emit (sqlite default and RFC3339).
var createdAtLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Mon, 02 Jan 2006 15:04:05 GMT",
}

// CreatedTime parses CreatedAt, returning the zero time when the value is
// missing or unrecognized rather than failing the render.
func (o Order) CreatedTime() time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, o.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Completed reports whether the order counts toward profile completion
// statistics.
func (o Order) Completed() bool {
	return o.Status == "completed" || o.Status == StatusDelivered
}
