package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phonetech/internal/models"
	"phonetech/internal/reports"
	"phonetech/internal/view"
)

func renderAdminOrders(c *gin.Context, deps *Deps) {
	const route = "SECTION admin-orders"

	token, _ := deps.Sessions.Current(c.Request)

	orders, err := deps.API.ListOrders(c.Request.Context(), token)
	if err != nil {
		failToSection(c, deps, route, err, "/")
		return
	}

	status := c.Query("status")
	filtered := reports.FilterByStatus(orders, status)

	data := pageData(c, deps, view.AdminOrders)
	data["Orders"] = filtered
	data["Statuses"] = models.OrderStatuses
	data["StatusFilter"] = status

	c.HTML(http.StatusOK, view.Describe(view.AdminOrders).Template, data)
}

// UpdateOrderStatus moves an order through its lifecycle.
func UpdateOrderStatus(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/orders/:id/status"

		token, _ := deps.Sessions.Current(c.Request)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.Redirect(http.StatusSeeOther, "/section/admin-orders")
			return
		}

		status := c.PostForm("status")
		if !models.ValidOrderStatus(status) {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", "Unknown order status.")
			c.Redirect(http.StatusSeeOther, "/section/admin-orders")
			return
		}

		if err := deps.API.UpdateOrderStatus(c.Request.Context(), token, id, status); err != nil {
			failToSection(c, deps, route, err, "/section/admin-orders")
			return
		}

		log.Printf("[%s] order %d -> %s", route, id, status)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success",
			fmt.Sprintf("Order #%d status updated to %s", id, status))
		c.Redirect(http.StatusSeeOther, "/section/admin-orders")
	}
}

// DeleteOrder removes an order record entirely.
func DeleteOrder(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/orders/:id"

		token, _ := deps.Sessions.Current(c.Request)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.Redirect(http.StatusSeeOther, "/section/admin-orders")
			return
		}

		if err := deps.API.DeleteOrder(c.Request.Context(), token, id); err != nil {
			failToSection(c, deps, route, err, "/section/admin-orders")
			return
		}

		log.Printf("[%s] order %d deleted", route, id)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Order deleted.")
		c.Redirect(http.StatusSeeOther, "/section/admin-orders")
	}
}
