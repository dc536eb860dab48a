package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonetech/internal/view"
)

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

func renderLogin(c *gin.Context, deps *Deps) {
	data := pageData(c, deps, view.Login)
	c.HTML(http.StatusOK, view.Describe(view.Login).Template, data)
}

func renderRegister(c *gin.Context, deps *Deps) {
	data := pageData(c, deps, view.Register)
	c.HTML(http.StatusOK, view.Describe(view.Register).Template, data)
}

// LoginPost exchanges credentials for a session and persists the token and
// user record together under the fixed session keys.
func LoginPost(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /login"

		var form loginForm
		if err := c.ShouldBind(&form); err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", "Username and password are required.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			return
		}

		creds, err := deps.API.Login(c.Request.Context(), form.Username, form.Password)
		if err != nil {
			failToSection(c, deps, route, err, "/section/login")
			return
		}

		if err := deps.Sessions.Save(c.Request, c.Writer, creds.Token, creds.User); err != nil {
			log.Printf("[%s] session save failed: %v", route, err)
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", "Could not establish a session.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			return
		}

		log.Printf("[%s] login succeeded: %s", route, creds.User.Username)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Welcome back, "+creds.User.Username+"!")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// RegisterPost creates an account; the backend logs it in immediately.
func RegisterPost(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /register"

		var form registerForm
		if err := c.ShouldBind(&form); err != nil {
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", validationMessage(err))
			c.Redirect(http.StatusSeeOther, "/section/register")
			return
		}

		creds, err := deps.API.Register(c.Request.Context(), form.Username, form.Email, form.Password)
		if err != nil {
			failToSection(c, deps, route, err, "/section/register")
			return
		}

		if err := deps.Sessions.Save(c.Request, c.Writer, creds.Token, creds.User); err != nil {
			log.Printf("[%s] session save failed: %v", route, err)
			deps.Sessions.AddFlash(c.Request, c.Writer, "error", "Could not establish a session.")
			c.Redirect(http.StatusSeeOther, "/section/login")
			return
		}

		log.Printf("[%s] account registered: %s", route, creds.User.Username)
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "Account created. Welcome!")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// Logout tells the backend to drop the session, then clears the stored
// token and user regardless of the outcome.
func Logout(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /logout"

		token, _ := deps.Sessions.Current(c.Request)
		if token != "" {
			if err := deps.API.Logout(c.Request.Context(), token); err != nil {
				// Server-side teardown is best effort; local state clears anyway.
				log.Printf("[%s] backend logout failed: %v", route, err)
			}
		}

		if err := deps.Sessions.Clear(c.Request, c.Writer); err != nil {
			log.Printf("[%s] session clear failed: %v", route, err)
		}
		deps.Sessions.AddFlash(c.Request, c.Writer, "success", "You have been logged out.")
		c.Redirect(http.StatusSeeOther, "/")
	}
}
