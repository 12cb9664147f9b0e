package database

import (
	"context"
	"errors"
	"fmt"
	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/repository"
	appErrors "locationreminder/internal/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUserID retrieves a subscriber by their LINE User ID.
func (r *userRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("subscriber %s: %w", userID, appErrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to find subscriber by user_id %s: %w", userID, err)
	}
	return &user, nil
}

// FindAll retrieves every subscriber.
func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.db.WithContext(ctx).Order("subscribed_at asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find all subscribers: %w", err)
	}
	return users, nil
}

// Create registers a subscriber. Registering an existing subscriber is a no-op.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create subscriber %s: %w", user.ID, err)
	}
	return nil
}

// Delete removes a subscriber by their LINE User ID.
func (r *userRepository) Delete(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscriber %s: %w", userID, err)
	}
	return nil
}
