package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness of the API.
type HealthHandler struct {
	storage string
	now     func() time.Time
}

// NewHealthHandler creates a new HealthHandler for the named storage driver.
func NewHealthHandler(storage string) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		now:     time.Now,
	}
}

// RegisterRoutes registers the health and test routes with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
	router.Get("/test", h.HandleTest)
}

// HandleHealth answers with the service status and current time.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"message":   "API is working with " + h.storage + " storage",
		"storage":   h.storage,
	})
}

// HandleTest echoes the request line, for smoke-testing a deployment.
func (h *HealthHandler) HandleTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "API is working!",
		"method":    c.Method(),
		"path":      c.Path(),
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
