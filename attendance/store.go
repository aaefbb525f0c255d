package attendance

import (
	"context"

	"github.com/acadportal/AMSBackend/models"
)

// CourseTotals is one student's running counters for one course, joined with
// the catalog fields the summary payload needs.
type CourseTotals struct {
	CourseName   string
	CourseCode   string
	TotalHours   int
	PresentHours int
}

// Store is the aggregate store the recorder and reader run against. All
// writes issued inside the function passed to InTx commit or roll back as a
// unit; implementations must make IncrementAggregate atomic per
// (student, course) row so concurrent recorder calls never lose updates.
type Store interface {
	// InTx runs fn against a transaction-scoped view of the store.
	// Any error from fn rolls back everything fn wrote.
	InTx(ctx context.Context, fn func(tx Store) error) error

	CourseExists(ctx context.Context, courseID uint) (bool, error)
	TeachesCourse(ctx context.Context, facultyID, courseID uint) (bool, error)

	// CreateEvent inserts the append-only event row and fills in its ID.
	CreateEvent(ctx context.Context, ev *models.AttendanceEvent) error
	// IncrementAggregate bumps total_hours by one and present_hours by one
	// when present, creating the (student, course) row on first use.
	IncrementAggregate(ctx context.Context, studentID, courseID uint, present bool) error
	CreateAbsence(ctx context.Context, rec *models.AbsenceRecord) error

	CourseTotalsForStudent(ctx context.Context, studentID uint) ([]CourseTotals, error)
	OverallTotalsForStudent(ctx context.Context, studentID uint) (total, present int, err error)
}
