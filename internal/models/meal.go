package models

import (
	"time"
)

// Meal is a single logged meal. Every query that touches a meal filters by
// both ID and UserID, so a meal is only ever visible to the user that
// created it.
type Meal struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"not null;type:varchar(255)" json:"name"`
	Description string    `gorm:"not null;type:text" json:"description"`
	MealDate    string    `gorm:"not null;type:varchar(255)" json:"meal_date"` // client-supplied date string, stored verbatim
	OnDiet      bool      `gorm:"not null" json:"on_diet"`
	UserID      string    `gorm:"not null;type:varchar(36);index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Meal) TableName() string {
	return "meals"
}
