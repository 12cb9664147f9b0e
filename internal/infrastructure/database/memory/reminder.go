// Package memory provides an in-memory reminder data source, used as the
// test double for the workflows and as the "memory" database driver.
package memory

import (
	"context"
	"errors"
	"sync"

	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/domain/result"
)

// TestErrorMessage is the message returned while the data source is in error mode.
const TestErrorMessage = "Test Exception"

// ErrSaveFailed is returned by writes while the data source is in error mode.
var ErrSaveFailed = errors.New(TestErrorMessage)

// ReminderDataSource keeps reminders in insertion order.
type ReminderDataSource struct {
	mu          sync.RWMutex
	reminders   []*entity.Reminder
	returnError bool
}

var _ repository.ReminderDataSource = (*ReminderDataSource)(nil)

// NewReminderDataSource creates a data source seeded with reminders.
func NewReminderDataSource(reminders ...*entity.Reminder) *ReminderDataSource {
	ds := &ReminderDataSource{}
	for _, r := range reminders {
		ds.upsert(r)
	}
	return ds
}

// SetReturnError toggles error mode: reads return an error result with
// status code 500 and writes fail.
func (s *ReminderDataSource) SetReturnError(value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returnError = value
}

// Reminders returns a snapshot of the stored reminders.
func (s *ReminderDataSource) Reminders() []*entity.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		out = append(out, clone(r))
	}
	return out
}

func (s *ReminderDataSource) GetReminders(_ context.Context) result.Result[[]*entity.Reminder] {
	s.mu.RLock()
	failing := s.returnError
	s.mu.RUnlock()
	if failing {
		return result.ErrorWithCode[[]*entity.Reminder](TestErrorMessage, result.CodeInternal)
	}
	return result.Success(s.Reminders())
}

func (s *ReminderDataSource) GetReminder(_ context.Context, id string) result.Result[*entity.Reminder] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.returnError {
		return result.ErrorWithCode[*entity.Reminder](TestErrorMessage, result.CodeInternal)
	}
	for _, r := range s.reminders {
		if r.ID == id {
			return result.Success(clone(r))
		}
	}
	return result.Error[*entity.Reminder](repository.ReminderNotFoundMessage)
}

func (s *ReminderDataSource) SaveReminder(_ context.Context, reminder *entity.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.returnError {
		return ErrSaveFailed
	}
	s.upsert(reminder)
	return nil
}

func (s *ReminderDataSource) DeleteAllReminders(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.returnError {
		return ErrSaveFailed
	}
	s.reminders = nil
	return nil
}

// upsert must be called with mu held for writing.
func (s *ReminderDataSource) upsert(reminder *entity.Reminder) {
	for i, r := range s.reminders {
		if r.ID == reminder.ID {
			s.reminders[i] = clone(reminder)
			return
		}
	}
	s.reminders = append(s.reminders, clone(reminder))
}

func clone(r *entity.Reminder) *entity.Reminder {
	c := *r
	return &c
}
