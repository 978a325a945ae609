package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the Fiber error handler for the API. Unmatched routes get
// a descriptive 404 and client errors raised by Fiber keep their status;
// every other error becomes a 500 without internal detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":  "Route not found",
				"path":   c.Path(),
				"method": c.Method(),
			})
		case fe.Code < fiber.StatusInternalServerError:
			return c.Status(fe.Code).JSON(fiber.Map{
				"error": fe.Message,
			})
		}
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Server error",
	})
}
