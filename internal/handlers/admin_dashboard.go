package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonetech/internal/models"
	"phonetech/internal/reports"
	"phonetech/internal/view"
)

func renderDashboard(c *gin.Context, deps *Deps) {
	const route = "SECTION admin-dashboard"

	token, _ := deps.Sessions.Current(c.Request)

	orders, err := deps.API.ListOrders(c.Request.Context(), token)
	if err != nil {
		failToSection(c, deps, route, err, "/")
		return
	}

	phones, err := deps.API.ListPhones(c.Request.Context())
	if err != nil {
		failToSection(c, deps, route, err, "/")
		return
	}
	deps.Catalog.Replace(phones)

	stats := reports.Dashboard(orders, phones)

	data := pageData(c, deps, view.AdminDashboard)
	data["Stats"] = stats
	data["RecentOrders"] = recentOrders(orders, 5)

	c.HTML(http.StatusOK, view.Describe(view.AdminDashboard).Template, data)
}

// recentOrders returns the newest n orders, assuming the backend lists
// newest first.
func recentOrders(orders []models.Order, n int) []models.Order {
	if len(orders) <= n {
		return orders
	}
	return orders[:n]
}
