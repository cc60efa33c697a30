// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
)

func SetupUserRoutes(router fiber.Router, protected fiber.Handler, userHandler *handler.UserHandler, presenceHandler *handler.PresenceHandler) {
	users := router.Group("/users")
	users.Use(protected)

	users.Get("/me", userHandler.Me)
	users.Get("/search", userHandler.Search)
	users.Get("/:userId", userHandler.Profile)
	users.Get("/:userId/presence", presenceHandler.Get)
}
