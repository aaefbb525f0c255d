package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acadportal/AMSBackend/models"
)

// Mark is one student's presence flag within a batch.
type Mark struct {
	StudentID uint
	Present   bool
}

// Recorder is the sole writer of attendance events, absence records and the
// per-student-per-course aggregates.
type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder { return &Recorder{store: store} }

// Record writes one attendance event for (date, courseID, facultyID) and, in
// the same transaction, bumps every marked student's aggregate and logs an
// absence row per absent student. On any failure nothing is committed and the
// caller must resubmit the whole batch. Returns the created event's ID.
//
// Re-submitting the same course/date double-counts every student's totals;
// there is no (course, date) uniqueness yet.
func (r *Recorder) Record(ctx context.Context, facultyID, courseID uint, date string, marks []Mark) (uint, error) {
	if courseID == 0 {
		return 0, fmt.Errorf("%w: missing course", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if len(marks) == 0 {
		return 0, fmt.Errorf("%w: empty attendance batch", ErrValidation)
	}
	seen := make(map[uint]struct{}, len(marks))
	for _, m := range marks {
		if m.StudentID == 0 {
			return 0, fmt.Errorf("%w: missing student id", ErrValidation)
		}
		if _, dup := seen[m.StudentID]; dup {
			return 0, fmt.Errorf("%w: duplicate student %d in batch", ErrValidation, m.StudentID)
		}
		seen[m.StudentID] = struct{}{}
	}

	var eventID uint
	err := r.store.InTx(ctx, func(tx Store) error {
		ok, err := tx.CourseExists(ctx, courseID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}

		ev := &models.AttendanceEvent{Date: date, CourseID: courseID, FacultyID: facultyID}
		if err := tx.CreateEvent(ctx, ev); err != nil {
			return err
		}

		for _, m := range marks {
			if err := tx.IncrementAggregate(ctx, m.StudentID, courseID, m.Present); err != nil {
				return err
			}
		}
		for _, m := range marks {
			if m.Present {
				continue
			}
			rec := &models.AbsenceRecord{
				StudentID: m.StudentID,
				CourseID:  courseID,
				EventID:   ev.ID,
				Date:      date,
			}
			if err := tx.CreateAbsence(ctx, rec); err != nil {
				return err
			}
		}

		eventID = ev.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
			return 0, err
		}
		return 0, fmt.Errorf("record attendance: %w: %w", ErrPersistence, err)
	}
	return eventID, nil
}
