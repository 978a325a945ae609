package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"exercisetracker/internal/models"

	"github.com/oklog/ulid/v2"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
// Its contents live for the lifetime of the process.
type MemoryUserRepository struct {
	users      []models.User
	byID       map[string]int
	byUsername map[string]int
	mu         sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:       make(map[string]int),
		byUsername: make(map[string]int),
	}
}

// Create adds a new user. The uniqueness check and the insert happen under
// the same write lock.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return ErrDuplicateUsername
	}
	if user.ID == "" {
		user.ID = ulid.Make().String()
	}
	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("user with ID %s already exists", user.ID)
	}
	user.CreatedAt = time.Now()

	r.users = append(r.users, *user)
	r.byID[user.ID] = len(r.users) - 1
	r.byUsername[user.Username] = len(r.users) - 1
	return nil
}

// GetByID returns a user by its ID.
func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.users[idx]
	return &user, nil
}

// GetByUsername returns a user by its username.
func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.users[idx]
	return &user, nil
}

// GetAll returns all users in insertion order.
func (r *MemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
