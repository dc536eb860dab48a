package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonetech/internal/session"
)

// RequireUser redirects logged-out visitors to the login section.
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, user := sessions.Current(c.Request)
		if token == "" || user == nil {
			log.Println("[AUTH] [INFO] anonymous visitor redirected to login")
			sessions.AddFlash(c.Request, c.Writer, "info", "Please log in to continue.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin blocks non-admin users from admin sections. The session is
// left intact; only the navigation is refused.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, user := sessions.Current(c.Request)
		if token == "" || user == nil {
			sessions.AddFlash(c.Request, c.Writer, "info", "Please log in to continue.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			log.Println("[AUTH] [ERROR] non-admin user blocked from admin route:", user.Username)
			sessions.AddFlash(c.Request, c.Writer, "error", "Admin privileges required.")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
