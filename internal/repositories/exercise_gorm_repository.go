package repositories

import (
	"context"
	"fmt"

	"exercisetracker/internal/models"

	"gorm.io/gorm"
)

// GORMExerciseRepository is a GORM implementation of ExerciseRepository.
type GORMExerciseRepository struct {
	db *gorm.DB
}

// NewGORMExerciseRepository creates a new instance of GORMExerciseRepository.
func NewGORMExerciseRepository(db *gorm.DB) *GORMExerciseRepository {
	return &GORMExerciseRepository{
		db: db,
	}
}

// Create inserts a new exercise.
func (r *GORMExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = newExerciseID()
	}
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// GetByUser retrieves the exercises owned by userID in insertion order,
// which is id order since ids are time-ordered.
func (r *GORMExerciseRepository) GetByUser(ctx context.Context, userID string) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises for user %s: %w", userID, err)
	}
	return exercises, nil
}
