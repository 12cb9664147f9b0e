package entity

import "time"

// User is a LINE user subscribed to geofence notifications.
type User struct {
	ID         string    `gorm:"column:user_id;primaryKey"`
	Subscribed time.Time `gorm:"column:subscribed_at"`
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "subscribers"
}
