package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"exercisetracker/internal/apperror"
	"exercisetracker/internal/metrics"
	"exercisetracker/internal/models"
	"exercisetracker/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// AddExerciseInput carries the raw fields of a new exercise. Duration is the
// textual form of the submitted value; Date is optional.
type AddExerciseInput struct {
	Description string `validate:"required"`
	Duration    string `validate:"required"`
	Date        string
}

// ExerciseService handles business logic for logging exercises.
type ExerciseService struct {
	users     repositories.UserRepository
	exercises repositories.ExerciseRepository
	publisher EventPublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewExerciseService creates a new ExerciseService. publisher may be nil.
func NewExerciseService(users repositories.UserRepository, exercises repositories.ExerciseRepository, publisher EventPublisher) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
		publisher: publisher,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// WithClock replaces the clock used to date exercises submitted without one.
func (s *ExerciseService) WithClock(now func() time.Time) *ExerciseService {
	s.now = now
	return s
}

// AddExercise validates input and stores it against the user identified by userID.
func (s *ExerciseService) AddExercise(ctx context.Context, userID string, input AddExerciseInput) (*models.LoggedExercise, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.Validation("Description and duration are required")
	}
	duration, err := ParseDuration(input.Duration)
	if err != nil {
		return nil, err
	}
	date := s.now().UTC()
	if strings.TrimSpace(input.Date) != "" {
		if date, err = models.ParseDate(input.Date); err != nil {
			return nil, apperror.Validation("Invalid date")
		}
	}

	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Description: input.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to add exercise for user %s: %w", user.ID, err)
	}
	metrics.ExercisesLogged.Inc()

	publish(ctx, s.publisher, RoutingKeyExerciseLogged, ExerciseLoggedEvent{
		ExerciseID:  exercise.ID,
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	})

	return &models.LoggedExercise{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        models.FormatDate(exercise.Date),
		ID:          user.ID,
	}, nil
}

var leadingInteger = regexp.MustCompile(`^[+-]?\d+`)

// ParseDuration coerces a submitted duration to whole minutes using its
// leading integer, so "30.9" is 30, "45min" is 45 and "1e3" is 1. The result
// must be positive.
func ParseDuration(raw string) (int, error) {
	prefix := leadingInteger.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return 0, apperror.Validation("Duration must be a positive integer")
	}
	minutes, err := strconv.Atoi(prefix)
	if err != nil || minutes <= 0 || minutes > math.MaxInt32 {
		return 0, apperror.Validation("Duration must be a positive integer")
	}
	return minutes, nil
}
