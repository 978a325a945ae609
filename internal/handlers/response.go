package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"exercisetracker/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// respondError writes the client-facing error for service errors of a known
// kind. Anything else is returned so the app's error handler answers 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": apperror.Message(err)})
	case errors.Is(err, apperror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": apperror.Message(err)})
	default:
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
		return err
	}
}

// parseBody decodes the request body into out. An empty body leaves out at
// its zero value so that missing fields are reported by validation.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

func invalidBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

// flexibleString accepts a JSON string or number and keeps its text.
type flexibleString string

func (s *flexibleString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexibleString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexibleString(num.String())
	return nil
}

func (s *flexibleString) UnmarshalText(text []byte) error {
	*s = flexibleString(text)
	return nil
}
