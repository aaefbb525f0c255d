package attendance

import (
	"context"
	"fmt"
	"math"
)

// CourseSummary is one course's line in the student attendance payload.
type CourseSummary struct {
	CourseName   string  `json:"course_name"`
	CourseCode   string  `json:"course_code"`
	TotalHours   int     `json:"total_hours"`
	PresentHours int     `json:"present_hours"`
	Percentage   float64 `json:"percentage"`
}

// OverallSummary sums the counters across every course the student has.
type OverallSummary struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Percentage int `json:"percentage"`
}

type Summary struct {
	Courses []CourseSummary `json:"courses"`
	Overall OverallSummary  `json:"overall"`
}

// Reader derives percentage summaries from the aggregate store. Read-only.
type Reader struct {
	store Store
}

func NewReader(store Store) *Reader { return &Reader{store: store} }

// Attendance returns the per-course and overall figures for one student.
// Per-course percentages carry two decimals, the overall percentage is a
// rounded integer; the asymmetry is part of the wire contract. Both reads run
// in one transaction so the two views never disagree under concurrent writes.
func (r *Reader) Attendance(ctx context.Context, studentID uint) (Summary, error) {
	out := Summary{Courses: []CourseSummary{}}

	err := r.store.InTx(ctx, func(tx Store) error {
		rows, err := tx.CourseTotalsForStudent(ctx, studentID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			out.Courses = append(out.Courses, CourseSummary{
				CourseName:   row.CourseName,
				CourseCode:   row.CourseCode,
				TotalHours:   row.TotalHours,
				PresentHours: row.PresentHours,
				Percentage:   CoursePercentage(row.PresentHours, row.TotalHours),
			})
		}

		total, present, err := tx.OverallTotalsForStudent(ctx, studentID)
		if err != nil {
			return err
		}
		out.Overall = OverallSummary{
			Total:      total,
			Present:    present,
			Percentage: OverallPercentage(present, total),
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("read attendance: %w: %w", ErrPersistence, err)
	}
	return out, nil
}

// CoursePercentage rounds present/total to two decimal places; 0 when the
// student has no recorded hours.
func CoursePercentage(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

// OverallPercentage rounds present/total to the nearest whole percent.
func OverallPercentage(present, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// Band classifies a percentage for display. Not stored anywhere; the client
// applies it to whatever percentage it is rendering.
func Band(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 75:
		return "Good"
	case percentage >= 60:
		return "Warning"
	default:
		return "Critical"
	}
}
