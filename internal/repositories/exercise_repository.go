package repositories

import (
	"context"

	"exercisetracker/internal/models"

	"github.com/google/uuid"
)

// ExerciseRepository defines the interface for exercise data access.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	// GetByUser returns every exercise owned by userID in insertion order.
	GetByUser(ctx context.Context, userID string) ([]models.Exercise, error)
}

// newExerciseID returns a version 7 UUID. Within a process these are
// strictly increasing, so ordering by id preserves insertion order.
func newExerciseID() string {
	return uuid.Must(uuid.NewV7()).String()
}
