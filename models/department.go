package models

import "time"

// Reference data, seeded at startup.
type Department struct {
	ID        uint      `json:"department_id" gorm:"primaryKey"`
	Code      string    `json:"department_code" gorm:"size:10;uniqueIndex;not null"`
	Name      string    `json:"department_name" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
