package models

import "time"

type Student struct {
	ID             uint       `json:"student_id" gorm:"column:student_id;primaryKey"`
	Name           string     `json:"name" gorm:"size:100;not null"`
	RollNumber     string     `json:"roll_number" gorm:"size:20;uniqueIndex;not null"`
	Email          string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password       string     `json:"-" gorm:"not null"` // bcrypt hash
	DepartmentID   uint       `json:"department_id" gorm:"index;not null"`
	Phone          string     `json:"phone" gorm:"size:15"`
	Address        string     `json:"address" gorm:"type:text"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Status         string     `json:"status" gorm:"size:20;not null"` // Active|Inactive
	EnrollmentDate time.Time  `json:"enrollment_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
