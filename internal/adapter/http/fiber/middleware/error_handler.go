package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		switch {
		case code >= fiber.StatusInternalServerError:
			log.Error("Request failed",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		case code >= fiber.StatusBadRequest:
			log.Warn("Request rejected",
				zap.Int("status", code),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
