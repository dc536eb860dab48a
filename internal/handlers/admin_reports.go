package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonetech/internal/reports"
	"phonetech/internal/view"
)

func renderReports(c *gin.Context, deps *Deps) {
	const route = "SECTION admin-reports"

	token, _ := deps.Sessions.Current(c.Request)

	tab := c.Query("tab")
	switch tab {
	case "sales", "stock", "orders":
	default:
		tab = "sales"
	}

	data := pageData(c, deps, view.AdminReports)
	data["Tab"] = tab

	switch tab {
	case "sales":
		orders, err := deps.API.ListOrders(c.Request.Context(), token)
		if err != nil {
			failToSection(c, deps, route, err, "/")
			return
		}
		data["SalesRows"] = reports.Sales(orders)
	case "stock":
		phones, err := deps.API.ListPhones(c.Request.Context())
		if err != nil {
			failToSection(c, deps, route, err, "/")
			return
		}
		deps.Catalog.Replace(phones)
		data["StockRows"] = reports.Stock(phones)
	case "orders":
		orders, err := deps.API.ListOrders(c.Request.Context(), token)
		if err != nil {
			failToSection(c, deps, route, err, "/")
			return
		}
		data["Orders"] = orders
	}

	c.HTML(http.StatusOK, view.Describe(view.AdminReports).Template, data)
}
