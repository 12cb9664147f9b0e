package testutil

import (
	"github.com/google/uuid"

	"locationreminder/internal/domain/entity"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// SampleReminder returns a fully populated reminder with a fresh ID.
func SampleReminder() *entity.Reminder {
	return &entity.Reminder{
		ID:          uuid.NewString(),
		Title:       Ptr("title"),
		Description: Ptr("description"),
		Location:    Ptr("location"),
		Latitude:    Ptr(0.0),
		Longitude:   Ptr(0.0),
	}
}

// ReminderAt returns a sample reminder centred on the given coordinates.
func ReminderAt(id string, lat, lng float64) *entity.Reminder {
	r := SampleReminder()
	r.ID = id
	r.Latitude = Ptr(lat)
	r.Longitude = Ptr(lng)
	return r
}
