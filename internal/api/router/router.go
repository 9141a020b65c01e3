package router

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/paviotti-fleet/monitor/internal/api/handlers/notification"
	"github.com/paviotti-fleet/monitor/internal/api/middleware"
)

// New builds the HTTP router. Admin routes require a bearer JWT with the
// ADMIN role; the webhook route is open and authenticated by its HMAC
// signature instead.
func New(handler *notification.Handler, jwtSecret string) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := e.Group("/api/notifications")

	api.POST("/webhook", handler.Webhook)

	admin := api.Group("")
	admin.Use(middleware.RequireAdmin(jwtSecret))

	admin.POST("/send", handler.Send)
	admin.GET("/:id/status", handler.GetStatus)
	admin.GET("/logs", handler.Logs)
	admin.POST("/retry", handler.Retry)
	admin.GET("/stats", handler.Stats)

	return e
}
