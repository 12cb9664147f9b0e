package service

import (
	"context"
	"errors"
	"fmt"
	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/repository"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/logger"
	"time"
)

type userService struct {
	userRepo repository.UserRepository
	log      logger.Logger
	now      func() time.Time
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(userRepo repository.UserRepository, log logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
		now:      time.Now,
	}
}

// GetOrCreateUser finds a subscriber by ID or registers a new one if not found.
func (s *userService) GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err == nil {
		s.log.Debug(fmt.Sprintf("Found existing subscriber %s", userID))
		return user, nil
	}
	if !errors.Is(err, appErrors.ErrUserNotFound) {
		s.log.Error(fmt.Sprintf("Failed to find subscriber %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Subscriber %s not found, registering.", userID))
	newUser := &entity.User{
		ID:         userID,
		Subscribed: s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		s.log.Error("Failed to register subscriber", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return newUser, nil
}

// GetUser finds a subscriber by ID. Returns ErrUserNotFound if not found.
func (s *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get subscriber %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return user, nil
}

// DeleteUser handles the unfollow event, removing the subscription.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete subscriber %s during unfollow", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted subscriber %s due to unfollow.", userID))
	return nil
}

// ListSubscribers returns every subscriber, oldest first.
func (s *userService) ListSubscribers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list subscribers", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return users, nil
}
