// interfaces/api/routes/relationship_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
)

func SetupRelationshipRoutes(router fiber.Router, protected fiber.Handler, relationshipHandler *handler.RelationshipHandler) {
	relationships := router.Group("/relationships")
	relationships.Use(protected)

	// List by status (?status=pending|accepted|blocked|unfriended)
	relationships.Get("/", relationshipHandler.ListByStatus)

	// Accepted counterparts with profiles
	relationships.Get("/friends", relationshipHandler.Friends)

	// Status with one specific user
	relationships.Get("/status/:userId", relationshipHandler.Status)

	// Friend request lifecycle
	relationships.Post("/request/:userId", relationshipHandler.SendRequest)
	relationships.Put("/accept/:requestId", relationshipHandler.AcceptRequest)
	relationships.Delete("/request/:requestId", relationshipHandler.RejectRequest)

	// Unfriend keeps the row; block/unblock
	relationships.Delete("/friend/:userId", relationshipHandler.Unfriend)
	relationships.Post("/block/:userId", relationshipHandler.Block)
	relationships.Delete("/block/:userId", relationshipHandler.Unblock)
}
