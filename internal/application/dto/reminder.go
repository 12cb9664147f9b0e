package dto

import (
	"github.com/google/uuid"

	"locationreminder/internal/domain/entity"
)

// ReminderDataItem is a reminder as the workflows and clients see it.
// A fresh item gets a new ID; saving an item with an existing ID overwrites it.
type ReminderDataItem struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ID          string   `json:"id"`
}

// NewReminderDataItem creates an item with a random UUID.
func NewReminderDataItem(title, description, location *string, latitude, longitude *float64) *ReminderDataItem {
	return &ReminderDataItem{
		Title:       title,
		Description: description,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		ID:          uuid.NewString(),
	}
}

// ToEntity converts the item to the persisted record.
func (i *ReminderDataItem) ToEntity() *entity.Reminder {
	return &entity.Reminder{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
		Latitude:    i.Latitude,
		Longitude:   i.Longitude,
	}
}

// FromEntity converts a persisted record to an item.
func FromEntity(r *entity.Reminder) ReminderDataItem {
	return ReminderDataItem{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		ID:          r.ID,
	}
}

// FromEntities converts a slice of records, never returning nil.
func FromEntities(reminders []*entity.Reminder) []ReminderDataItem {
	items := make([]ReminderDataItem, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, FromEntity(r))
	}
	return items
}

// SaveReminderRequest is the body of POST /api/v1/reminders.
// Title and location are checked by the save workflow, not here, so that
// missing values are reported with their workflow reason.
type SaveReminderRequest struct {
	ID          string   `json:"id" validate:"omitempty,max=64"`
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// ToDataItem builds the candidate item, generating an ID when none was sent.
func (r SaveReminderRequest) ToDataItem() *ReminderDataItem {
	item := NewReminderDataItem(r.Title, r.Description, r.Location, r.Latitude, r.Longitude)
	if r.ID != "" {
		item.ID = r.ID
	}
	return item
}

// SaveReminderResponse is returned once a reminder is stored.
type SaveReminderResponse struct {
	Message  string           `json:"message"`
	Reminder ReminderDataItem `json:"reminder"`
}

// ReminderListResponse wraps the list of saved reminders.
type ReminderListResponse struct {
	Reminders []ReminderDataItem `json:"reminders"`
	NoData    bool               `json:"no_data"`
}

// ReportLocationRequest is the body of POST /api/v1/locations.
type ReportLocationRequest struct {
	DeviceID  string   `json:"device_id" validate:"required,max=128"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// ReportLocationResponse lists the reminders whose region was just entered.
type ReportLocationResponse struct {
	Triggered []ReminderDataItem `json:"triggered"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
}
