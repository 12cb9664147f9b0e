package entity

// Reminder is a location based reminder as it is persisted.
// Every attribute except the ID is optional at the storage layer; required
// fields are enforced by the save workflow before a record reaches storage.
type Reminder struct {
	ID          string   `gorm:"column:id;primaryKey;type:text"`
	Title       *string  `gorm:"column:title;type:text"`
	Description *string  `gorm:"column:description;type:text"`
	Location    *string  `gorm:"column:location;type:text"`
	Latitude    *float64 `gorm:"column:latitude"`
	Longitude   *float64 `gorm:"column:longitude"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// HasCoordinates reports whether both latitude and longitude are set.
func (r *Reminder) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
