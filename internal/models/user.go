package models

import (
	"time"
)

// User is an account that owns meals. Passwords are stored exactly as
// received and compared by equality on login; there is no hashing and no
// uniqueness constraint on username in the current schema.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"not null;type:varchar(255)" json:"username"`
	Password  string    `gorm:"not null;type:varchar(255)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
