// interfaces/api/handler/message_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send is the REST send path. It runs the same pipeline as a realtime
// message:send but has no originating session, so no echo event is emitted;
// the created message comes back in the response body instead.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidArg("malformed request body"))
	}

	msg, err := h.messageService.Send(userID, uuid.Nil, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, dto.NewMessagePayload(msg))
}

// Conversation returns message history with one partner, newest first.
// Cursor pagination via ?before=<messageID>, page size via ?limit.
func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	partnerID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	limit := c.QueryInt("limit", 50)
	var beforeID *uuid.UUID
	if before := c.Query("before"); before != "" {
		id, err := uuid.Parse(before)
		if err != nil {
			return respondError(c, apperrors.InvalidArg("invalid cursor"))
		}
		beforeID = &id
	}

	messages, err := h.messageService.Conversation(userID, partnerID, limit, beforeID)
	if err != nil {
		return respondError(c, err)
	}

	payloads := make([]*dto.MessagePayload, 0, len(messages))
	for _, m := range messages {
		payloads = append(payloads, dto.NewMessagePayload(m))
	}
	return respondOK(c, fiber.StatusOK, payloads)
}

func (h *MessageHandler) Partners(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	partners, err := h.messageService.Partners(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, partners)
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid message id"))
	}

	if err := h.messageService.SoftDelete(messageID, userID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

type reactRequest struct {
	Emoji string `json:"emoji"`
}

func (h *MessageHandler) React(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid message id"))
	}

	var req reactRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.InvalidArg("malformed request body"))
	}

	msg, err := h.messageService.React(messageID, userID, req.Emoji)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, msg)
}
