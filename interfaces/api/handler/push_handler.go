// interfaces/api/handler/push_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type PushHandler struct {
	pushService service.PushService
}

func NewPushHandler(pushService service.PushService) *PushHandler {
	return &PushHandler{pushService: pushService}
}

// Subscribe stores a browser push subscription. Re-subscribing the same
// endpoint with fresh keys updates the stored row.
func (h *PushHandler) Subscribe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidArg("malformed request body"))
	}

	sub, err := h.pushService.Subscribe(userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, sub)
}

func (h *PushHandler) Unsubscribe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidArg("malformed request body"))
	}

	if err := h.pushService.Unsubscribe(userID, req.Endpoint); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, fiber.Map{"unsubscribed": true})
}
