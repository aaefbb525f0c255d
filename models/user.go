package models

import "time"

// Admin accounts live in their own table, separate from students and faculty.
type User struct {
	ID        uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
