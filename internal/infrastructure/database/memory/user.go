package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/repository"
	appErrors "locationreminder/internal/pkg/errors"
)

// UserRepository keeps subscribers in a map.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty subscriber store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]entity.User)}
}

func (r *UserRepository) FindByUserID(_ context.Context, userID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("subscriber %s: %w", userID, appErrors.ErrUserNotFound)
	}
	return &user, nil
}

// FindAll returns subscribers ordered by subscription time, then ID.
func (r *UserRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Subscribed.Equal(users[j].Subscribed) {
			return users[i].ID < users[j].ID
		}
		return users[i].Subscribed.Before(users[j].Subscribed)
	})
	return users, nil
}

// Create registers a subscriber. Registering an existing subscriber is a no-op.
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		r.users[user.ID] = *user
	}
	return nil
}

func (r *UserRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}
