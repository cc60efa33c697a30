// interfaces/api/handler/respond.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

// respondOK wraps data in the standard success envelope.
func respondOK(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondError maps an AppError code to its HTTP status. Plain errors fall
// through as 500 without leaking their text.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apperrors.AppError
	if !errors.As(err, &ae) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "internal error",
		})
	}
	return c.Status(httpStatus(ae.Code)).JSON(fiber.Map{
		"success": false,
		"code":    ae.Code,
		"message": ae.Message,
	})
}

func httpStatus(code apperrors.Code) int {
	switch code {
	case apperrors.CodeInvalidArgument, apperrors.CodeAlreadyExists:
		return fiber.StatusBadRequest
	case apperrors.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case apperrors.CodePermissionDenied:
		return fiber.StatusForbidden
	case apperrors.CodeNotFound:
		return fiber.StatusNotFound
	case apperrors.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the app-level fiber error handler: anything a handler or
// middleware returns as an error lands here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}
	return respondError(c, err)
}
