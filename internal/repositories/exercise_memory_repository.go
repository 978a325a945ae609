package repositories

import (
	"context"
	"sync"
	"time"

	"exercisetracker/internal/models"
)

// MemoryExerciseRepository is an in-memory implementation of ExerciseRepository.
type MemoryExerciseRepository struct {
	exercises []models.Exercise
	mu        sync.RWMutex
}

// NewMemoryExerciseRepository creates a new instance of MemoryExerciseRepository.
func NewMemoryExerciseRepository() *MemoryExerciseRepository {
	return &MemoryExerciseRepository{}
}

// Create appends a new exercise.
func (r *MemoryExerciseRepository) Create(_ context.Context, exercise *models.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = newExerciseID()
	}
	exercise.CreatedAt = time.Now()
	r.exercises = append(r.exercises, *exercise)
	return nil
}

// GetByUser returns the exercises owned by userID in insertion order.
func (r *MemoryExerciseRepository) GetByUser(_ context.Context, userID string) ([]models.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercises := make([]models.Exercise, 0)
	for _, e := range r.exercises {
		if e.UserID == userID {
			exercises = append(exercises, e)
		}
	}
	return exercises, nil
}
