package service

import (
	"context"
	"fmt"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/geofence"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/domain/result"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/logger"
)

// NotificationQueue accepts notifications for later delivery.
type NotificationQueue interface {
	Enqueue(n Notification)
}

// LocationService turns device location reports into geofence ENTER events.
type LocationService struct {
	dataSource    repository.ReminderDataSource
	tracker       *geofence.Tracker
	radiusMeters  float64
	notifications NotificationQueue
	log           logger.Logger
}

// NewLocationService creates a LocationService. A non-positive radius falls
// back to geofence.DefaultRadiusMeters.
func NewLocationService(
	dataSource repository.ReminderDataSource,
	tracker *geofence.Tracker,
	radiusMeters float64,
	notifications NotificationQueue,
	log logger.Logger,
) *LocationService {
	if radiusMeters <= 0 {
		radiusMeters = geofence.DefaultRadiusMeters
	}
	return &LocationService{
		dataSource:    dataSource,
		tracker:       tracker,
		radiusMeters:  radiusMeters,
		notifications: notifications,
		log:           log,
	}
}

// ReportLocation records where deviceID is and returns the reminders whose
// region it just entered. One notification is queued per entered region.
func (s *LocationService) ReportLocation(ctx context.Context, deviceID string, latitude, longitude float64) ([]dto.ReminderDataItem, error) {
	res := s.dataSource.GetReminders(ctx)
	if res.IsError() {
		return nil, resultError(res)
	}

	reminders := res.Data()
	byID := make(map[string]*entity.Reminder, len(reminders))
	for _, r := range reminders {
		byID[r.ID] = r
	}

	point := geofence.Point{Latitude: latitude, Longitude: longitude}
	entered := s.tracker.Update(deviceID, point, geofence.RegionsFor(reminders, s.radiusMeters))

	triggered := make([]dto.ReminderDataItem, 0, len(entered))
	for _, region := range entered {
		reminder := byID[region.RequestID]
		triggered = append(triggered, dto.FromEntity(reminder))
		s.notifications.Enqueue(NotificationFor(reminder, deviceID))
	}
	if len(triggered) > 0 {
		s.log.Info(fmt.Sprintf("Device %s entered %d reminder regions", deviceID, len(triggered)))
	}
	return triggered, nil
}

// Forget drops the tracked position of deviceID.
func (s *LocationService) Forget(deviceID string) {
	s.tracker.Forget(deviceID)
}

// resultError converts an error result into a Go error for callers that do
// not deal in results. A result without a status code is a lookup miss.
func resultError[T any](res result.Result[T]) error {
	if code, ok := res.StatusCode(); ok {
		return fmt.Errorf("%w: %s (code %d)", appErrors.ErrDatabaseOperation, res.Message(), code)
	}
	return fmt.Errorf("%w: %s", appErrors.ErrReminderNotFound, res.Message())
}
