// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
)

// SetupRoutes mounts the whole REST surface under /api/v1.
func SetupRoutes(
	app *fiber.App,
	protected fiber.Handler,
	relationshipHandler *handler.RelationshipHandler,
	messageHandler *handler.MessageHandler,
	unreadHandler *handler.UnreadHandler,
	pushHandler *handler.PushHandler,
	presenceHandler *handler.PresenceHandler,
	userHandler *handler.UserHandler,
) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	SetupUserRoutes(api, protected, userHandler, presenceHandler)
	SetupRelationshipRoutes(api, protected, relationshipHandler)
	SetupMessageRoutes(api, protected, messageHandler, unreadHandler)
	SetupPushRoutes(api, protected, pushHandler)
}
