// interfaces/api/handler/relationship_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type RelationshipHandler struct {
	relationshipService service.RelationshipService
}

func NewRelationshipHandler(relationshipService service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationshipService}
}

func (h *RelationshipHandler) SendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	rel, err := h.relationshipService.Request(userID, targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, rel)
}

func (h *RelationshipHandler) AcceptRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	relationshipID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid request id"))
	}

	rel, err := h.relationshipService.Accept(relationshipID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, rel)
}

func (h *RelationshipHandler) RejectRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	relationshipID, err := uuid.Parse(c.Params("requestId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid request id"))
	}

	if err := h.relationshipService.Reject(relationshipID, userID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, fiber.Map{"rejected": true})
}

func (h *RelationshipHandler) Unfriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	rel, err := h.relationshipService.Unfriend(userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, rel)
}

func (h *RelationshipHandler) Block(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	rel, err := h.relationshipService.Block(userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, rel)
}

func (h *RelationshipHandler) Unblock(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	rel, err := h.relationshipService.Unblock(userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, rel)
}

// Status reports the relationship with one other user from the caller's
// perspective.
func (h *RelationshipHandler) Status(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	view, err := h.relationshipService.StatusBetween(userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, view)
}

// ListByStatus returns the caller's relationships filtered by status, e.g.
// /relationships?status=pending for the incoming/outgoing request list.
func (h *RelationshipHandler) ListByStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	status := models.RelationshipStatus(c.Query("status", string(models.RelationshipPending)))
	switch status {
	case models.RelationshipPending, models.RelationshipAccepted,
		models.RelationshipBlocked, models.RelationshipUnfriended:
	default:
		return respondError(c, apperrors.InvalidArg("unknown relationship status"))
	}

	views, err := h.relationshipService.ListByStatus(userID, status)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, views)
}

func (h *RelationshipHandler) Friends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	friends, err := h.relationshipService.Friends(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, friends)
}
