package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoursePercentage(t *testing.T) {
	assert.Equal(t, 70.00, CoursePercentage(7, 10))
	assert.Equal(t, 33.33, CoursePercentage(1, 3))
	assert.Equal(t, 66.67, CoursePercentage(2, 3))
	assert.Equal(t, 100.0, CoursePercentage(5, 5))
	assert.Equal(t, 0.0, CoursePercentage(0, 0))
}

func TestOverallPercentage(t *testing.T) {
	assert.Equal(t, 82, OverallPercentage(82, 100))
	assert.Equal(t, 33, OverallPercentage(1, 3))
	assert.Equal(t, 67, OverallPercentage(2, 3))
	assert.Equal(t, 0, OverallPercentage(0, 0))
}

func TestBand(t *testing.T) {
	assert.Equal(t, "Excellent", Band(100))
	assert.Equal(t, "Excellent", Band(90))
	assert.Equal(t, "Good", Band(89.99))
	assert.Equal(t, "Good", Band(75))
	assert.Equal(t, "Warning", Band(74.99))
	assert.Equal(t, "Warning", Band(60))
	assert.Equal(t, "Critical", Band(59.99))
	assert.Equal(t, "Critical", Band(0))
}

func TestReaderSummary(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.AddCourse(1, "CS101", "Data Structures")
	store.AddCourse(2, "CS205", "Operating Systems")
	recorder := NewRecorder(store)

	// course 1: 7 of 10 present
	for i := 0; i < 10; i++ {
		_, err := recorder.Record(ctx, 5, 1, "2024-03-01", []Mark{{StudentID: 10, Present: i < 7}})
		require.NoError(t, err)
	}
	// course 2: 9 of 10 present
	for i := 0; i < 10; i++ {
		_, err := recorder.Record(ctx, 5, 2, "2024-03-01", []Mark{{StudentID: 10, Present: i < 9}})
		require.NoError(t, err)
	}

	summary, err := NewReader(store).Attendance(ctx, 10)
	require.NoError(t, err)

	require.Len(t, summary.Courses, 2)
	ds := summary.Courses[0] // sorted by course name
	require.Equal(t, "Data Structures", ds.CourseName)
	assert.Equal(t, "CS101", ds.CourseCode)
	assert.Equal(t, 10, ds.TotalHours)
	assert.Equal(t, 7, ds.PresentHours)
	assert.Equal(t, 70.00, ds.Percentage)

	osys := summary.Courses[1]
	require.Equal(t, "Operating Systems", osys.CourseName)
	assert.Equal(t, 90.00, osys.Percentage)

	assert.Equal(t, 20, summary.Overall.Total)
	assert.Equal(t, 16, summary.Overall.Present)
	assert.Equal(t, 80, summary.Overall.Percentage)
}

func TestReaderSummaryNoRecords(t *testing.T) {
	store := NewMemoryStore()
	summary, err := NewReader(store).Attendance(context.Background(), 42)
	require.NoError(t, err)

	assert.NotNil(t, summary.Courses)
	assert.Empty(t, summary.Courses)
	assert.Equal(t, 0, summary.Overall.Total)
	assert.Equal(t, 0, summary.Overall.Present)
	assert.Equal(t, 0, summary.Overall.Percentage)
}
