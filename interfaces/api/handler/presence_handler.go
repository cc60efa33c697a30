// interfaces/api/handler/presence_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type PresenceHandler struct {
	presenceService service.PresenceService
}

func NewPresenceHandler(presenceService service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceService: presenceService}
}

// Get returns live status plus the advisory last-seen timestamp for one user.
func (h *PresenceHandler) Get(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return respondError(c, err)
	}
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	info, err := h.presenceService.Presence(targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, info)
}
