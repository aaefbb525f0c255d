package models

import "time"

type Faculty struct {
	ID             uint      `json:"faculty_id" gorm:"column:faculty_id;primaryKey"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	Email          string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"` // bcrypt hash
	DepartmentID   uint      `json:"department_id" gorm:"index;not null"`
	Phone          string    `json:"phone" gorm:"size:15"`
	Position       string    `json:"position" gorm:"size:50"`
	Specialization string    `json:"specialization" gorm:"size:100"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Faculty) TableName() string { return "faculty" }
