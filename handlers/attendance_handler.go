package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadportal/AMSBackend/attendance"
)

// AttendanceHandler exposes the recorder's write path to faculty and the
// reader's summary to students.
type AttendanceHandler struct {
	store    attendance.Store
	recorder *attendance.Recorder
	reader   *attendance.Reader
}

func NewAttendanceHandler(store attendance.Store) *AttendanceHandler {
	return &AttendanceHandler{
		store:    store,
		recorder: attendance.NewRecorder(store),
		reader:   attendance.NewReader(store),
	}
}

type markEntry struct {
	StudentID uint `json:"studentId" validate:"required"`
	IsPresent bool `json:"isPresent"`
}

type markAttendanceReq struct {
	CourseID   uint        `json:"courseId" validate:"required"`
	Date       string      `json:"date" validate:"required"`
	Attendance []markEntry `json:"attendance" validate:"required,min=1,dive"`
}

// POST /faculty/mark-attendance
func (h *AttendanceHandler) Mark(c echo.Context) error {
	facultyID := principalID(c)

	var req markAttendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid attendance data"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid attendance data"})
	}

	ctx := c.Request().Context()
	teaches, err := h.store.TeachesCourse(ctx, facultyID, req.CourseID)
	if err != nil {
		log.Printf("mark-attendance: course assignment lookup: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to mark attendance"})
	}
	if !teaches {
		return c.JSON(http.StatusForbidden, map[string]any{"message": "Access denied. Faculty does not teach this course."})
	}

	marks := make([]attendance.Mark, 0, len(req.Attendance))
	for _, e := range req.Attendance {
		marks = append(marks, attendance.Mark{StudentID: e.StudentID, Present: e.IsPresent})
	}

	eventID, err := h.recorder.Record(ctx, facultyID, req.CourseID, req.Date, marks)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid attendance data"})
		case errors.Is(err, attendance.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Course not found"})
		default:
			log.Printf("mark-attendance: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to mark attendance"})
		}
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":         "Attendance marked successfully",
		"attendanceLogId": eventID,
	})
}

// GET /student/attendance
func (h *AttendanceHandler) StudentAttendance(c echo.Context) error {
	studentID := principalID(c)

	summary, err := h.reader.Attendance(c.Request().Context(), studentID)
	if err != nil {
		log.Printf("student attendance: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch attendance data"})
	}
	return c.JSON(http.StatusOK, summary)
}
