package repositories

import (
	"context"
	"errors"
	"fmt"

	"exercisetracker/internal/models"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
// The database must be opened with TranslateError so that unique index
// violations surface as gorm.ErrDuplicatedKey.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database. The unique index on username
// rejects a concurrent insert that slips past the existence check.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = ulid.Make().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUsername
		}
		return tx.Create(user).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicateUsername), errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateUsername
	default:
		return fmt.Errorf("failed to create user: %w", err)
	}
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *GORMUserRepository) first(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user (%s %s): %w", query, arg, err)
	}
	return &user, nil
}

// GetAll retrieves all users in insertion order. ULIDs from ulid.Make are
// monotonic within a process, so id order is creation order.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}
