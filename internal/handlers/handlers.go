// Package handlers renders the storefront sections and forwards every
// mutation to the upstream REST backend through the API client.
package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"phonetech/internal/api"
	"phonetech/internal/catalog"
	"phonetech/internal/session"
	"phonetech/internal/view"
)

// Deps carries the long-lived collaborators every handler shares.
type Deps struct {
	API      *api.Client
	Catalog  *catalog.Store
	Sessions *session.Manager
}

// pageData assembles the fields every template expects: navigation, the
// current user, drained flashes and the CSRF field for forms.
func pageData(c *gin.Context, deps *Deps, section view.Section) gin.H {
	_, user := deps.Sessions.Current(c.Request)
	isAdmin := user != nil && user.IsAdmin
	spec := view.Describe(section)

	return gin.H{
		"Title":     spec.Title,
		"Active":    spec.Key,
		"Nav":       view.Nav(isAdmin),
		"User":      user,
		"IsAdmin":   isAdmin,
		"Flashes":   deps.Sessions.Flashes(c.Request, c.Writer),
		"CsrfField": csrf.TemplateField(c.Request),
	}
}

// failToSection reports a failed API call and returns the user to a stable
// page. A 401 clears the stored session entirely: the user is logged out
// and must re-authenticate. A 403 leaves the session intact.
func failToSection(c *gin.Context, deps *Deps, route string, err error, fallback string) {
	log.Printf("[%s] %v", route, err)

	if errors.Is(err, api.ErrAuthentication) {
		if clearErr := deps.Sessions.Clear(c.Request, c.Writer); clearErr != nil {
			log.Printf("[%s] session clear failed: %v", route, clearErr)
		}
		deps.Sessions.AddFlash(c.Request, c.Writer, "error", api.Message(err))
		c.Redirect(http.StatusSeeOther, "/section/login")
		return
	}

	deps.Sessions.AddFlash(c.Request, c.Writer, "error", api.Message(err))
	c.Redirect(http.StatusSeeOther, fallback)
}

// ShowSection is the navigation entry point: it resolves the key, refuses
// hidden sections, runs the section's data refresh and renders its template.
func ShowSection(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		section := view.Lookup(key)

		if !view.Visible(section, deps.Sessions.IsAdmin(c.Request)) {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", "Admin privileges required.")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		switch section {
		case view.Phones:
			renderPhones(c, deps)
		case view.OrderPhone:
			renderOrderForm(c, deps)
		case view.AddPhone:
			renderPhoneForm(c, deps, 0)
		case view.Profile:
			renderProfile(c, deps)
		case view.AdminDashboard:
			renderDashboard(c, deps)
		case view.AdminOrders:
			renderAdminOrders(c, deps)
		case view.AdminReports:
			renderReports(c, deps)
		case view.Login:
			renderLogin(c, deps)
		case view.Register:
			renderRegister(c, deps)
		default:
			renderHome(c, deps)
		}
	}
}

// TemplateFuncs registers the renderer helpers the section templates use.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"currency":    currencyFunc,
		"stockLabel":  stockLabelFunc,
		"statusTitle": statusTitleFunc,
		"shortDate":   shortDateFunc,
		"hasFeature":  hasFeatureFunc,
	}
}
