package database

import (
	"context"
	"errors"
	"fmt"
	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/domain/result"
	"locationreminder/internal/infrastructure/dispatch"
	appErrors "locationreminder/internal/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reminderRepository struct {
	db         *gorm.DB
	dispatcher dispatch.Dispatcher
}

// NewReminderRepository creates the local reminder data source. Every
// operation runs through dispatcher.
func NewReminderRepository(db *gorm.DB, dispatcher dispatch.Dispatcher) repository.ReminderDataSource {
	return &reminderRepository{db: db, dispatcher: dispatcher}
}

// GetReminders retrieves all reminders.
func (r *reminderRepository) GetReminders(ctx context.Context) result.Result[[]*entity.Reminder] {
	reminders := []*entity.Reminder{}
	err := r.dispatcher.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Find(&reminders).Error
	})
	if err != nil {
		return failure[[]*entity.Reminder](fmt.Errorf("failed to find all reminders: %w", err))
	}
	return result.Success(reminders)
}

// GetReminder retrieves a reminder by its ID.
func (r *reminderRepository) GetReminder(ctx context.Context, id string) result.Result[*entity.Reminder] {
	var reminder entity.Reminder
	err := r.dispatcher.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Error[*entity.Reminder](repository.ReminderNotFoundMessage)
		}
		return failure[*entity.Reminder](fmt.Errorf("failed to find reminder by id %s: %w", id, err))
	}
	return result.Success(&reminder)
}

// SaveReminder inserts the reminder or overwrites the row with the same ID.
func (r *reminderRepository) SaveReminder(ctx context.Context, reminder *entity.Reminder) error {
	err := r.dispatcher.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(reminder).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save reminder %s: %w", reminder.ID, err)
	}
	return nil
}

// DeleteAllReminders deletes every reminder.
func (r *reminderRepository) DeleteAllReminders(ctx context.Context) error {
	err := r.dispatcher.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Reminder{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete all reminders: %w", err)
	}
	return nil
}

// failure maps a storage or dispatch error onto the error variant.
func failure[T any](err error) result.Result[T] {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, appErrors.ErrDispatcherClosed) {
		return result.ErrorWithCode[T](err.Error(), result.CodeUnavailable)
	}
	return result.ErrorWithCode[T](err.Error(), result.CodeInternal)
}
