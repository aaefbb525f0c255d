package models

import "time"

// Running per-student-per-course counters. Written only by the attendance
// recorder; both counters only ever go up, and present_hours never exceeds
// total_hours.
type AttendanceAggregate struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentID    uint      `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null"`
	TotalHours   int       `json:"total_hours" gorm:"not null;default:0"`
	PresentHours int       `json:"present_hours" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// One faculty submission of attendance for one course on one date.
// Append-only; anchors the absence log.
type AttendanceEvent struct {
	ID        uint      `json:"attendance_log_id" gorm:"column:attendance_log_id;primaryKey"`
	Date      string    `json:"date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	FacultyID uint      `json:"faculty_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// One row per student marked absent in an event. The date duplicates the
// event's date for query convenience.
type AbsenceRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	EventID   uint      `json:"attendance_log_id" gorm:"column:attendance_log_id;index;not null"`
	Date      string    `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
