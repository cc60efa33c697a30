// interfaces/api/handler/unread_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type UnreadHandler struct {
	unreadService service.UnreadService
}

func NewUnreadHandler(unreadService service.UnreadService) *UnreadHandler {
	return &UnreadHandler{unreadService: unreadService}
}

// Counts returns per-sender unread counts for the caller. Senders with no
// unread messages do not appear.
func (h *UnreadHandler) Counts(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	counts, err := h.unreadService.UnreadCounts(userID)
	if err != nil {
		return respondError(c, err)
	}

	out := make(map[string]int64, len(counts))
	for senderID, n := range counts {
		out[senderID.String()] = n
	}
	return respondOK(c, fiber.StatusOK, out)
}

type markReadRequest struct {
	MessageIDs []uuid.UUID `json:"message_ids"`
}

func (h *UnreadHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req markReadRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidArg("malformed request body"))
	}

	updated, err := h.unreadService.MarkRead(userID, req.MessageIDs)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, fiber.Map{"updated": updated})
}
