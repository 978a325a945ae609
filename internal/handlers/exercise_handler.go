package handlers

import (
	"exercisetracker/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ExerciseHandler handles HTTP requests for logging exercises and reading logs.
type ExerciseHandler struct {
	exercises *services.ExerciseService
	logs      *services.LogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exercises *services.ExerciseService, logs *services.LogService) *ExerciseHandler {
	return &ExerciseHandler{
		exercises: exercises,
		logs:      logs,
	}
}

// RegisterRoutes registers the exercise routes with the Fiber app.
func (h *ExerciseHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/:id/exercises", h.HandleAddExercise)
	userRoutes.Get("/:id/logs", h.HandleGetLog)
}

type addExerciseRequest struct {
	Description string         `json:"description" form:"description"`
	Duration    flexibleString `json:"duration" form:"duration"`
	Date        string         `json:"date" form:"date"`
}

// HandleAddExercise logs an exercise for the user in the path.
func (h *ExerciseHandler) HandleAddExercise(c *fiber.Ctx) error {
	var req addExerciseRequest
	if err := parseBody(c, &req); err != nil {
		return invalidBody(c, err)
	}

	logged, err := h.exercises.AddExercise(c.UserContext(), c.Params("id"), services.AddExerciseInput{
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logged)
}

// HandleGetLog returns the user's exercise log, optionally bounded by the
// from, to and limit query parameters.
func (h *ExerciseHandler) HandleGetLog(c *fiber.Ctx) error {
	exerciseLog, err := h.logs.Query(c.UserContext(), c.Params("id"), services.LogParams{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exerciseLog)
}
