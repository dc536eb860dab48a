package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"phonetech/internal/api"
	"phonetech/internal/catalog"
	"phonetech/internal/config"
	"phonetech/internal/handlers"
	"phonetech/internal/middleware"
	"phonetech/internal/session"
)

func main() {
	config.Load()

	client := api.New(config.AppEnv.APIBaseURL, config.AppEnv.RequestTimeout)
	store := catalog.NewStore()
	sessions := session.NewManager(config.AppEnv.SessionKey, config.AppEnv.CookieSecure)

	deps := &handlers.Deps{API: client, Catalog: store, Sessions: sessions}

	// Startup probes are informational only; the storefront still serves
	// pages while the backend is down.
	ctx := context.Background()
	if health, err := client.Health(ctx); err != nil {
		log.Println("backend unreachable at startup:", err)
	} else {
		log.Printf("backend healthy: %s", health.Message)
		if db, err := client.DBCheck(ctx); err == nil {
			log.Printf("backend database ok: %d phones", db.PhoneCount)
		}
	}

	r := gin.Default()
	r.SetFuncMap(handlers.TemplateFuncs())
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/", handlers.ShowSection(deps))
	r.GET("/section/:key", handlers.ShowSection(deps))

	r.POST("/login", handlers.LoginPost(deps))
	r.POST("/register", handlers.RegisterPost(deps))
	r.POST("/logout", handlers.Logout(deps))

	user := r.Group("/")
	user.Use(middleware.RequireUser(sessions))
	{
		user.POST("/orders", handlers.PlaceOrder(deps))
		user.POST("/profile", handlers.UpdateProfile(deps))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(sessions))
	{
		admin.POST("/phones", handlers.CreatePhone(deps))
		admin.POST("/phones/:id", handlers.UpdatePhone(deps))
		admin.POST("/phones/:id/delete", handlers.DeletePhone(deps))
		admin.POST("/orders/:id/status", handlers.UpdateOrderStatus(deps))
		admin.POST("/orders/:id/delete", handlers.DeleteOrder(deps))
	}

	CSRF := csrf.Protect(
		config.AppEnv.CSRFKey,
		csrf.Secure(config.AppEnv.CookieSecure),
		csrf.TrustedOrigins([]string{
			"localhost:" + config.AppEnv.Port,
			"127.0.0.1:" + config.AppEnv.Port,
			"localhost", "127.0.0.1",
		}),
	)

	log.Println("listening on port", config.AppEnv.Port)
	if err := http.ListenAndServe(":"+config.AppEnv.Port, CSRF(r)); err != nil {
		log.Fatal(err)
	}
}
