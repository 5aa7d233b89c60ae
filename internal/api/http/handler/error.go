package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

const (
	msgUserNotFound        = "User not found"
	msgEmailExists         = "Email already exists"
	msgNameEmailRequired   = "Name and email are required"
	msgInvalidRequestBody  = "Invalid request body"
	msgInternalServerError = "Internal server error"
)

// statusFor maps a service error to the REST status code and error message.
func statusFor(err error) (int, string) {
	switch model.KindOf(err) {
	case model.KindNotFound:
		return fiber.StatusNotFound, msgUserNotFound
	case model.KindConflict:
		return fiber.StatusConflict, msgEmailExists
	case model.KindValidation:
		return fiber.StatusBadRequest, msgNameEmailRequired
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}

func handleError(c *fiber.Ctx, err error) error {
	code, msg := statusFor(err)
	return c.Status(code).JSON(errorResponse{Error: msg})
}

// ErrorHandler renders errors that escape a handler, including recovered panics.
func ErrorHandler(logger *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorResponse{Error: fiberErr.Message})
		}

		logger.Error("HTTP handler: unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error())

		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   msgInternalServerError,
			Details: err.Error(),
		})
	}
}
