// interfaces/api/routes/message_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
)

func SetupMessageRoutes(router fiber.Router, protected fiber.Handler, messageHandler *handler.MessageHandler, unreadHandler *handler.UnreadHandler) {
	messages := router.Group("/messages")
	messages.Use(protected)

	messages.Post("/", messageHandler.Send)
	messages.Get("/partners", messageHandler.Partners)

	messages.Get("/unread", unreadHandler.Counts)
	messages.Post("/read", unreadHandler.MarkRead)

	messages.Get("/with/:userId", messageHandler.Conversation)
	messages.Delete("/:messageId", messageHandler.Delete)
	messages.Post("/:messageId/reactions", messageHandler.React)
}
