// Package reports derives the admin report tables and dashboard counters
// from already-fetched orders and catalog data, the same aggregations the
// storefront computes locally.
package reports

import (
	"sort"

	"phonetech/internal/models"
)

// SalesRow aggregates orders per brand and model.
type SalesRow struct {
	Brand         string
	Model         string
	OrdersCount   int
	TotalQuantity int
	TotalRevenue  float64
}

// Sales groups orders by brand+model. Rows come back sorted by revenue,
// highest first, so the table reads as a ranking.
func Sales(orders []models.Order) []SalesRow {
	index := make(map[string]*SalesRow)
	keys := make([]string, 0)

	for _, order := range orders {
		key := order.Brand + "-" + order.Model
		row, ok := index[key]
		if !ok {
			row = &SalesRow{Brand: order.Brand, Model: order.Model}
			index[key] = row
			keys = append(keys, key)
		}
		row.OrdersCount++
		row.TotalQuantity += order.Quantity
		row.TotalRevenue += order.TotalPrice
	}

	rows := make([]SalesRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, *index[key])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})
	return rows
}

// StockRow is one line of the stock report.
type StockRow struct {
	Phone  models.Phone
	Status models.StockStatus
	Label  string
}

// Stock labels every catalog entry for the stock report tab.
func Stock(phones []models.Phone) []StockRow {
	rows := make([]StockRow, 0, len(phones))
	for _, p := range phones {
		rows = append(rows, StockRow{Phone: p, Status: p.Status(), Label: StockLabel(p)})
	}
	return rows
}

// StockLabel is the badge text for a phone's stock level.
func StockLabel(p models.Phone) string {
	switch p.Status() {
	case models.StockOut:
		return "Out of Stock"
	case models.StockLow:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// DashboardStats backs the admin dashboard counters.
type DashboardStats struct {
	TotalOrders    int
	TotalPhones    int
	TotalRevenue   float64
	TotalCustomers int
}

// Dashboard totals orders and revenue across the whole system.
func Dashboard(orders []models.Order, phones []models.Phone) DashboardStats {
	stats := DashboardStats{
		TotalOrders: len(orders),
		TotalPhones: len(phones),
	}
	customers := make(map[string]bool)
	for _, order := range orders {
		stats.TotalRevenue += order.TotalPrice
		if order.CustomerEmail != "" {
			customers[order.CustomerEmail] = true
		}
	}
	stats.TotalCustomers = len(customers)
	return stats
}

// ProfileStats backs the profile page counters for one user's orders.
type ProfileStats struct {
	TotalOrders     int
	TotalSpent      float64
	CompletedOrders int
}

// Profile totals a user's own order history.
func Profile(orders []models.Order) ProfileStats {
	stats := ProfileStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.TotalSpent += order.TotalPrice
		if order.Completed() {
			stats.CompletedOrders++
		}
	}
	return stats
}

// FilterByStatus keeps orders matching the status key; "all" or empty keeps
// everything.
func FilterByStatus(orders []models.Order, status string) []models.Order {
	if status == "" || status == "all" {
		return orders
	}
	kept := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == status {
			kept = append(kept, order)
		}
	}
	return kept
}
