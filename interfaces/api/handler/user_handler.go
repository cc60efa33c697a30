// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return respondError(c, err)
	}

	profile, err := h.userService.Profile(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, profile)
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return respondError(c, err)
	}
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, apperrors.InvalidArg("invalid user id"))
	}

	profile, err := h.userService.Profile(targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, profile)
}

// Search looks a user up by exact username, the entry point for sending a
// friend request to someone new.
func (h *UserHandler) Search(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return respondError(c, err)
	}

	profile, err := h.userService.Search(c.Query("username"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, profile)
}
