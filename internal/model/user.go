package model

import "time"

// User represents a registered patient profile. Users are immutable after
// signup; there is no update or delete operation.
type User struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Condition string    `json:"condition" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}
