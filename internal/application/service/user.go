package service

import (
	"context"
	"locationreminder/internal/domain/entity"
)

// UserService defines the interface for subscriber-related business logic.
type UserService interface {
	// GetOrCreateUser finds a subscriber by ID or registers a new one if not found.
	GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error)
	// GetUser finds a subscriber by ID. Returns ErrUserNotFound if not found.
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	// DeleteUser handles the unfollow event, removing the subscription.
	DeleteUser(ctx context.Context, userID string) error
	// ListSubscribers returns every subscriber, oldest first.
	ListSubscribers(ctx context.Context) ([]*entity.User, error)
}
