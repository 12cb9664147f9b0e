package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/application/service"
	"locationreminder/internal/infrastructure/database/memory"
	"locationreminder/internal/pkg/logger"
	"locationreminder/internal/pkg/observable"
	"locationreminder/internal/testutil"
)

func TestLoadReminders(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes loading true then false", func(t *testing.T) {
		svc := service.NewRemindersListService(memory.NewReminderDataSource(), logger.Nop())
		loading, cancel := observable.Record(&svc.ShowLoading)
		defer cancel()

		svc.LoadReminders(ctx)

		assert.Equal(t, []bool{true, false}, loading.Values())
	})

	t.Run("empty source gives an empty list and no data", func(t *testing.T) {
		svc := service.NewRemindersListService(memory.NewReminderDataSource(), logger.Nop())

		svc.LoadReminders(ctx)

		list, ok := svc.RemindersList.Get()
		require.True(t, ok)
		assert.NotNil(t, list)
		assert.Empty(t, list)
		assert.True(t, svc.ShowNoData.Value())
	})

	t.Run("stored reminders are listed", func(t *testing.T) {
		reminder := testutil.SampleReminder()
		svc := service.NewRemindersListService(memory.NewReminderDataSource(reminder), logger.Nop())

		svc.LoadReminders(ctx)

		list := svc.RemindersList.Value()
		require.Len(t, list, 1)
		assert.Equal(t, dto.FromEntity(reminder), list[0])
		assert.False(t, svc.ShowNoData.Value())
	})

	t.Run("error publishes the message and keeps no data", func(t *testing.T) {
		ds := memory.NewReminderDataSource(testutil.SampleReminder())
		ds.SetReturnError(true)
		svc := service.NewRemindersListService(ds, logger.Nop())

		svc.LoadReminders(ctx)

		assert.Equal(t, "Test Exception", svc.ShowSnackBar.Value())
		assert.False(t, svc.RemindersList.IsSet())
		assert.True(t, svc.ShowNoData.Value())
	})
}
