package services

import (
	"context"
	"errors"
	"fmt"

	"exercisetracker/internal/apperror"
	"exercisetracker/internal/metrics"
	"exercisetracker/internal/models"
	"exercisetracker/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CreateUserInput carries the fields accepted when registering a user.
type CreateUserInput struct {
	Username string `validate:"required"`
}

// UserService handles business logic for user registration and listing.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// CreateUser registers a new user with a unique username.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.Validation("Username is required")
	}

	user := &models.User{Username: input.Username}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, apperror.Conflict("Username already exists")
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	metrics.UsersCreated.Inc()

	publish(ctx, s.publisher, RoutingKeyUserCreated, UserCreatedEvent{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	return user, nil
}

// ListUsers returns every user's public projection in insertion order.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}

// findUser resolves id to a user, mapping a missing record to a NotFound error.
func findUser(ctx context.Context, repo repositories.UserRepository, id string) (*models.User, error) {
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}
