package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonetech/internal/models"
	"phonetech/internal/reports"
	"phonetech/internal/view"
)

type profileForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
}

// renderProfile shows account details, order history and statistics. Guests
// get the hint block instead of history.
func renderProfile(c *gin.Context, deps *Deps) {
	const route = "SECTION profile"

	token, user := deps.Sessions.Current(c.Request)
	data := pageData(c, deps, view.Profile)

	if token == "" || user == nil {
		data["Orders"] = []models.Order{}
		data["Stats"] = reports.ProfileStats{}
		c.HTML(http.StatusOK, view.Describe(view.Profile).Template, data)
		return
	}

	orders, err := deps.API.UserOrders(c.Request.Context(), token)
	if err != nil {
		failToSection(c, deps, route, err, "/")
		return
	}

	data["Orders"] = orders
	data["Stats"] = reports.Profile(orders)
	c.HTML(http.StatusOK, view.Describe(view.Profile).Template, data)
}

// UpdateProfile changes username/email. The backend rotates the session
// token, so the fresh credentials replace the stored pair.
func UpdateProfile(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /user/profile"

		token, user := deps.Sessions.Current(c.Request)
		if token == "" || user == nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "info", "Please log in to update your profile.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			return
		}

		var form profileForm
		if err := c.ShouldBind(&form); err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", validationMessage(err))
			c.Redirect(http.StatusSeeOther, "/section/profile")
			return
		}

		creds, err := deps.API.UpdateProfile(c.Request.Context(), token, form.Username, form.Email)
		if err != nil {
			failToSection(c, deps, route, err, "/section/profile")
			return
		}

		if err := deps.Sessions.Save(c.Request, c.Writer, creds.Token, creds.User); err != nil {
			log.Printf("[%s] session save failed: %v", route, err)
		}

		log.Printf("[%s] profile updated: %s", route, creds.User.Username)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Profile updated successfully!")
		c.Redirect(http.StatusSeeOther, "/section/profile")
	}
}
