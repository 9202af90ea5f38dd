package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by controllers into JSON
// responses. ApiErrors keep their status and code; anything else becomes a
// generic 500 without leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if apiErr, ok := AsApiError(err); ok {
			status := apiErr.Status
			if status == 0 || status == fiber.StatusOK {
				status = fiber.StatusInternalServerError
			}
			return ctx.Status(status).JSON(ErrorResponse(apiErr))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(Response[any]{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(Response[any]{
			Success: false,
			Message: "internal server error",
		})
	}
}
