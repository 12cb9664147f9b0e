package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"locationreminder/internal/domain/entity"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/logger"
)

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=service

// Notifier delivers a text message to a single recipient.
type Notifier interface {
	PushText(ctx context.Context, to string, text string) error
}

// SubscriberLister returns the recipients of broadcast notifications.
type SubscriberLister interface {
	ListSubscribers(ctx context.Context) ([]*entity.User, error)
}

// Notification announces that a device entered a reminder's region.
type Notification struct {
	ReminderID string
	Title      string
	Location   string
	DeviceID   string
}

// NotificationFor builds the notification for reminder as seen by deviceID.
func NotificationFor(reminder *entity.Reminder, deviceID string) Notification {
	n := Notification{ReminderID: reminder.ID, DeviceID: deviceID}
	if reminder.Title != nil {
		n.Title = *reminder.Title
	}
	if reminder.Location != nil {
		n.Location = *reminder.Location
	}
	return n
}

// Text is the message body pushed to recipients.
func (n Notification) Text() string {
	return n.Title + "\n" + n.Location
}

// delivery is one outbox entry. An empty to means every recipient known at
// flush time; a failed delivery is re-queued for the recipient it failed on.
type delivery struct {
	notification Notification
	to           string
}

// NotificationService queues geofence notifications and pushes them on Flush.
type NotificationService struct {
	notifier    Notifier
	subscribers SubscriberLister
	adminUserID string
	log         logger.Logger

	mu     sync.Mutex
	outbox []delivery
}

// NewNotificationService creates the outbox. adminUserID, when set, receives
// every notification in addition to the subscribers.
func NewNotificationService(notifier Notifier, subscribers SubscriberLister, adminUserID string, log logger.Logger) *NotificationService {
	return &NotificationService{
		notifier:    notifier,
		subscribers: subscribers,
		adminUserID: adminUserID,
		log:         log,
	}
}

// Enqueue adds n to the outbox.
func (s *NotificationService) Enqueue(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, delivery{notification: n})
}

// Pending returns the number of queued deliveries.
func (s *NotificationService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outbox)
}

// Flush pushes every queued notification. Deliveries that fail stay queued
// for the next flush and are reported in the returned error.
func (s *NotificationService) Flush(ctx context.Context) error {
	s.mu.Lock()
	pending := s.outbox
	s.outbox = nil
	s.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	recipients, err := s.recipients(ctx, pending)
	if err != nil {
		s.requeue(pending)
		return err
	}

	var failed []delivery
	var errs []error
	sent := 0
	for _, d := range pending {
		targets := recipients
		if d.to != "" {
			targets = []string{d.to}
		}
		if len(targets) == 0 {
			s.log.Warn(fmt.Sprintf("No recipients for reminder %s, dropping notification", d.notification.ReminderID))
			continue
		}
		for _, to := range targets {
			if err := s.notifier.PushText(ctx, to, d.notification.Text()); err != nil {
				s.log.Error(fmt.Sprintf("Failed to push reminder %s to %s", d.notification.ReminderID, to), err)
				failed = append(failed, delivery{notification: d.notification, to: to})
				errs = append(errs, err)
				continue
			}
			sent++
		}
	}

	s.requeue(failed)
	s.log.Info(fmt.Sprintf("Flushed notifications. Sent: %d, Failed: %d", sent, len(failed)))
	if len(errs) > 0 {
		return fmt.Errorf("%w: %d deliveries failed: %w", appErrors.ErrLineAPI, len(failed), errors.Join(errs...))
	}
	return nil
}

// recipients resolves broadcast targets, only querying subscribers when a
// pending delivery needs them.
func (s *NotificationService) recipients(ctx context.Context, pending []delivery) ([]string, error) {
	broadcast := false
	for _, d := range pending {
		if d.to == "" {
			broadcast = true
			break
		}
	}
	if !broadcast {
		return nil, nil
	}

	users, err := s.subscribers.ListSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(users)+1)
	ids := make([]string, 0, len(users)+1)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, u := range users {
		add(u.ID)
	}
	add(s.adminUserID)
	return ids, nil
}

// requeue puts deliveries back ahead of anything enqueued meanwhile.
func (s *NotificationService) requeue(deliveries []delivery) {
	if len(deliveries) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(append([]delivery{}, deliveries...), s.outbox...)
}

// LogNotifier writes notifications to the log. It stands in for LINE when
// the messaging integration is disabled.
type LogNotifier struct {
	log logger.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) PushText(_ context.Context, to string, text string) error {
	n.log.Info(fmt.Sprintf("Notification for %s: %q", to, text))
	return nil
}
