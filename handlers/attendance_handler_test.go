package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadportal/AMSBackend/attendance"
)

func newMarkContext(e *echo.Echo, body string, facultyID uint) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/faculty/mark-attendance", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", facultyID)
	c.Set("role", "faculty")
	return c, rec
}

func TestMarkAttendance(t *testing.T) {
	e := echo.New()
	store := attendance.NewMemoryStore()
	store.AddCourse(1, "CS101", "Data Structures")
	store.AssignFaculty(5, 1)
	h := NewAttendanceHandler(store)

	body := `{"courseId":1,"date":"2024-03-01","attendance":[{"studentId":10,"isPresent":true},{"studentId":11,"isPresent":false}]}`
	c, rec := newMarkContext(e, body, 5)

	require.NoError(t, h.Mark(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message         string `json:"message"`
		AttendanceLogID uint   `json:"attendanceLogId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Attendance marked successfully", resp.Message)
	assert.NotZero(t, resp.AttendanceLogID)

	agg, ok := store.Aggregate(10, 1)
	require.True(t, ok)
	assert.Equal(t, 1, agg.TotalHours)
	assert.Equal(t, 1, agg.PresentHours)
	assert.Len(t, store.Absences(), 1)
}

func TestMarkAttendanceNotTeaching(t *testing.T) {
	e := echo.New()
	store := attendance.NewMemoryStore()
	store.AddCourse(1, "CS101", "Data Structures")
	h := NewAttendanceHandler(store)

	body := `{"courseId":1,"date":"2024-03-01","attendance":[{"studentId":10,"isPresent":true}]}`
	c, rec := newMarkContext(e, body, 5)

	require.NoError(t, h.Mark(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, store.Events())
}

func TestMarkAttendanceBadPayload(t *testing.T) {
	e := echo.New()
	store := attendance.NewMemoryStore()
	store.AddCourse(1, "CS101", "Data Structures")
	store.AssignFaculty(5, 1)
	h := NewAttendanceHandler(store)

	for name, body := range map[string]string{
		"not json":          `{"courseId":`,
		"empty batch":       `{"courseId":1,"date":"2024-03-01","attendance":[]}`,
		"missing course":    `{"date":"2024-03-01","attendance":[{"studentId":10,"isPresent":true}]}`,
		"zero student id":   `{"courseId":1,"date":"2024-03-01","attendance":[{"isPresent":true}]}`,
		"malformed date":    `{"courseId":1,"date":"03/01/2024","attendance":[{"studentId":10,"isPresent":true}]}`,
		"duplicate student": `{"courseId":1,"date":"2024-03-01","attendance":[{"studentId":10,"isPresent":true},{"studentId":10,"isPresent":false}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := newMarkContext(e, body, 5)
			require.NoError(t, h.Mark(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Empty(t, store.Events())
}

func TestMarkAttendanceUnknownCourse(t *testing.T) {
	e := echo.New()
	store := attendance.NewMemoryStore()
	store.AssignFaculty(5, 9)
	h := NewAttendanceHandler(store)

	body := `{"courseId":9,"date":"2024-03-01","attendance":[{"studentId":10,"isPresent":true}]}`
	c, rec := newMarkContext(e, body, 5)

	require.NoError(t, h.Mark(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// brokenStore stands in for a database that drops every transaction.
type brokenStore struct {
	*attendance.MemoryStore
}

func (s *brokenStore) InTx(ctx context.Context, fn func(attendance.Store) error) error {
	return errors.New("connection refused")
}

func TestMarkAttendanceStoreFailure(t *testing.T) {
	e := echo.New()
	mem := attendance.NewMemoryStore()
	mem.AddCourse(1, "CS101", "Data Structures")
	mem.AssignFaculty(5, 1)
	h := NewAttendanceHandler(&brokenStore{MemoryStore: mem})

	body := `{"courseId":1,"date":"2024-03-01","attendance":[{"studentId":10,"isPresent":true}]}`
	c, rec := newMarkContext(e, body, 5)

	require.NoError(t, h.Mark(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to mark attendance", resp.Message)
	assert.Empty(t, mem.Events())
}

func TestStudentAttendancePayload(t *testing.T) {
	e := echo.New()
	store := attendance.NewMemoryStore()
	store.AddCourse(1, "CS101", "Data Structures")
	h := NewAttendanceHandler(store)

	// 7 of 10 hours present
	recorder := attendance.NewRecorder(store)
	for i := 0; i < 10; i++ {
		_, err := recorder.Record(context.Background(), 5, 1, "2024-03-01",
			[]attendance.Mark{{StudentID: 10, Present: i < 7}})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/student/attendance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(10))
	c.Set("role", "student")

	require.NoError(t, h.StudentAttendance(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Courses []struct {
			CourseName   string  `json:"course_name"`
			CourseCode   string  `json:"course_code"`
			TotalHours   int     `json:"total_hours"`
			PresentHours int     `json:"present_hours"`
			Percentage   float64 `json:"percentage"`
		} `json:"courses"`
		Overall struct {
			Total      int `json:"total"`
			Present    int `json:"present"`
			Percentage int `json:"percentage"`
		} `json:"overall"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Data Structures", resp.Courses[0].CourseName)
	assert.Equal(t, "CS101", resp.Courses[0].CourseCode)
	assert.Equal(t, 10, resp.Courses[0].TotalHours)
	assert.Equal(t, 7, resp.Courses[0].PresentHours)
	assert.Equal(t, 70.00, resp.Courses[0].Percentage)
	assert.Equal(t, 10, resp.Overall.Total)
	assert.Equal(t, 7, resp.Overall.Present)
	assert.Equal(t, 70, resp.Overall.Percentage)
}
