package repository

import (
	"context"
	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/result"
)

// ReminderNotFoundMessage is the fixed message of the error result returned
// by GetReminder for an id that was never saved.
const ReminderNotFoundMessage = "Reminder not found!"

// ReminderDataSource defines the reminder data operations consumed by the workflows.
type ReminderDataSource interface {
	// GetReminders retrieves every saved reminder. An empty table is a success.
	GetReminders(ctx context.Context) result.Result[[]*entity.Reminder]
	// GetReminder retrieves a reminder by its ID.
	GetReminder(ctx context.Context, id string) result.Result[*entity.Reminder]
	// SaveReminder inserts the reminder or overwrites the row with the same ID.
	SaveReminder(ctx context.Context, reminder *entity.Reminder) error
	// DeleteAllReminders removes every reminder.
	DeleteAllReminders(ctx context.Context) error
}
