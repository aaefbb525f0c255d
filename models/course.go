package models

import "time"

// Reference data, owned by the course catalog.
type Course struct {
	ID          uint      `json:"course_id" gorm:"column:course_id;primaryKey"`
	Code        string    `json:"course_code" gorm:"size:20;uniqueIndex;not null"`
	Name        string    `json:"course_name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Which faculty teaches which course.
type CourseAssignment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FacultyID uint      `json:"faculty_id" gorm:"uniqueIndex:idx_faculty_course;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_faculty_course;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Explicit student↔course enrollment; the roster for attendance marking.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"uniqueIndex:idx_student_course_enroll;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_student_course_enroll;not null"`
	CreatedAt time.Time `json:"created_at"`
}
