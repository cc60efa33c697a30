// interfaces/api/routes/push_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
)

func SetupPushRoutes(router fiber.Router, protected fiber.Handler, pushHandler *handler.PushHandler) {
	push := router.Group("/push")
	push.Use(protected)

	push.Post("/subscriptions", pushHandler.Subscribe)
	push.Delete("/subscriptions", pushHandler.Unsubscribe)
}
