package handlers

import (
	"exercisetracker/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleGetUsers)
}

type createUserRequest struct {
	Username string `json:"username" form:"username"`
}

// HandleCreateUser registers a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := parseBody(c, &req); err != nil {
		return invalidBody(c, err)
	}

	user, err := h.service.CreateUser(c.UserContext(), services.CreateUserInput{Username: req.Username})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.Summary())
}

// HandleGetUsers lists every registered user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
