package service

import (
	"context"
	"fmt"
	"locationreminder/internal/infrastructure/scheduler"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/logger"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	log           logger.Logger

	mu           sync.Mutex // Protects flushEntryID
	flushEntryID cron.EntryID
	hasFlushJob  bool
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(cronScheduler *scheduler.Scheduler, log logger.Logger) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		log:           log,
	}
}

// formatEverySpec generates a cron descriptor running every interval.
func formatEverySpec(interval time.Duration) string {
	return fmt.Sprintf("@every %s", interval)
}

// ScheduleNotificationFlush runs flush every interval. Each run gets a
// context that expires after one interval.
func (s *schedulerService) ScheduleNotificationFlush(interval time.Duration, flush func(ctx context.Context) error) error {
	if interval < time.Second {
		return fmt.Errorf("%w: flush interval %s is below one second", appErrors.ErrScheduling, interval)
	}

	s.CancelNotificationFlush()

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		if err := flush(ctx); err != nil {
			s.log.Error("Error flushing notifications", err)
		}
	}

	entryID, err := s.cronScheduler.AddJob(formatEverySpec(interval), jobFunc)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}

	s.mu.Lock()
	s.flushEntryID = entryID
	s.hasFlushJob = true
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("Scheduled notification flush every %s (Job ID: %d)", interval, entryID))
	return nil
}

// CancelNotificationFlush removes the flush job, if any.
func (s *schedulerService) CancelNotificationFlush() {
	s.mu.Lock()
	entryID, ok := s.flushEntryID, s.hasFlushJob
	s.hasFlushJob = false
	s.mu.Unlock()

	if !ok {
		s.log.Debug("No notification flush job to cancel.")
		return
	}
	s.cronScheduler.RemoveJob(entryID)
	s.log.Info(fmt.Sprintf("Cancelled notification flush (Job ID: %d)", entryID))
}

// Stop stops the underlying scheduler.
func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}
