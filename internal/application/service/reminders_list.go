package service

import (
	"context"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/pkg/logger"
	"locationreminder/internal/pkg/observable"
)

// RemindersListService loads the saved reminders for display.
type RemindersListService struct {
	BaseState

	RemindersList observable.Value[[]dto.ReminderDataItem]

	dataSource repository.ReminderDataSource
	log        logger.Logger
}

// NewRemindersListService creates a list workflow over dataSource.
func NewRemindersListService(dataSource repository.ReminderDataSource, log logger.Logger) *RemindersListService {
	return &RemindersListService{
		dataSource: dataSource,
		log:        log,
	}
}

// LoadReminders refreshes RemindersList. A failed load keeps the previous
// list and publishes the error message on ShowSnackBar.
func (s *RemindersListService) LoadReminders(ctx context.Context) {
	s.ShowLoading.Set(true)
	res := s.dataSource.GetReminders(ctx)
	s.ShowLoading.Set(false)

	if res.IsSuccess() {
		s.RemindersList.Set(dto.FromEntities(res.Data()))
	} else {
		s.log.Warn("Failed to load reminders: " + res.Message())
		s.ShowSnackBar.Set(res.Message())
	}

	s.invalidateShowNoData()
}

func (s *RemindersListService) invalidateShowNoData() {
	list, ok := s.RemindersList.Get()
	s.ShowNoData.Set(!ok || len(list) == 0)
}
