package service

import (
	"context"
	"time"
)

// SchedulerService defines the interface for scheduling operations.
type SchedulerService interface {
	// ScheduleNotificationFlush runs flush every interval, replacing any
	// flush job registered earlier.
	ScheduleNotificationFlush(interval time.Duration, flush func(ctx context.Context) error) error
	// CancelNotificationFlush removes the flush job, if any.
	CancelNotificationFlush()
	// Stop stops the underlying scheduler.
	Stop()
}
