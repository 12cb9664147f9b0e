package repository

import (
	"context"
	"locationreminder/internal/domain/entity"
)

// UserRepository defines the interface for subscriber data operations.
type UserRepository interface {
	// FindByUserID retrieves a subscriber by their LINE User ID.
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
	// FindAll retrieves every subscriber.
	FindAll(ctx context.Context) ([]*entity.User, error)
	// Create registers a new subscriber.
	Create(ctx context.Context, user *entity.User) error
	// Delete removes a subscriber by their LINE User ID.
	Delete(ctx context.Context, userID string) error
}
