package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/acadportal/AMSBackend/models"
)

// GormStore is the PostgreSQL-backed Store. The aggregate increment rides on
// the database's native INSERT ... ON CONFLICT DO UPDATE, so two recorder
// calls racing on the same (student, course) row serialize inside the
// database instead of losing an update.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) CourseExists(ctx context.Context, courseID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Course{}).
		Where("course_id = ?", courseID).Count(&n).Error
	return n > 0, err
}

func (s *GormStore) TeachesCourse(ctx context.Context, facultyID, courseID uint) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.CourseAssignment{}).
		Where("faculty_id = ? AND course_id = ?", facultyID, courseID).Count(&n).Error
	return n > 0, err
}

func (s *GormStore) CreateEvent(ctx context.Context, ev *models.AttendanceEvent) error {
	return s.db.WithContext(ctx).Create(ev).Error
}

func (s *GormStore) IncrementAggregate(ctx context.Context, studentID, courseID uint, present bool) error {
	presentInc := 0
	if present {
		presentInc = 1
	}
	agg := models.AttendanceAggregate{
		StudentID:    studentID,
		CourseID:     courseID,
		TotalHours:   1,
		PresentHours: presentInc,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_hours":   gorm.Expr("attendance_aggregates.total_hours + 1"),
			"present_hours": gorm.Expr("attendance_aggregates.present_hours + ?", presentInc),
			"updated_at":    time.Now(),
		}),
	}).Create(&agg).Error
}

func (s *GormStore) CreateAbsence(ctx context.Context, rec *models.AbsenceRecord) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) CourseTotalsForStudent(ctx context.Context, studentID uint) ([]CourseTotals, error) {
	var rows []CourseTotals
	err := s.db.WithContext(ctx).
		Table("attendance_aggregates AS a").
		Select("c.name AS course_name, c.code AS course_code, a.total_hours, a.present_hours").
		Joins("JOIN courses c ON c.course_id = a.course_id").
		Where("a.student_id = ?", studentID).
		Order("c.name").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) OverallTotalsForStudent(ctx context.Context, studentID uint) (int, int, error) {
	var sums struct {
		Total   int
		Present int
	}
	err := s.db.WithContext(ctx).
		Model(&models.AttendanceAggregate{}).
		Select("COALESCE(SUM(total_hours), 0) AS total, COALESCE(SUM(present_hours), 0) AS present").
		Where("student_id = ?", studentID).
		Scan(&sums).Error
	return sums.Total, sums.Present, err
}
