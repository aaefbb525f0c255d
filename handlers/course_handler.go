package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadportal/AMSBackend/database"
)

// CourseHandler serves the faculty-facing catalog views: assigned courses
// and the per-course roster the marking screen is built from.
type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

// GET /faculty/courses lists the courses assigned to the calling faculty.
func (h *CourseHandler) ListForFaculty(c echo.Context) error {
	facultyID := principalID(c)

	type row struct {
		CourseID    uint   `json:"course_id"`
		CourseCode  string `json:"course_code"`
		CourseName  string `json:"course_name"`
		Description string `json:"description"`
	}
	var rows []row
	err := database.DB.Table("courses AS c").
		Select("c.course_id, c.code AS course_code, c.name AS course_name, c.description").
		Joins("JOIN course_assignments ca ON ca.course_id = c.course_id").
		Where("ca.faculty_id = ?", facultyID).
		Order("c.name").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch courses"})
	}
	if rows == nil {
		rows = []row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /faculty/course/:courseId/students lists the roster eligible for marking,
// resolved from explicit enrollments.
func (h *CourseHandler) ListStudents(c echo.Context) error {
	facultyID := principalID(c)
	courseID := atoiOr(c.Param("courseId"), 0)
	if courseID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid course id"})
	}

	var teaching int64
	if err := database.DB.Table("course_assignments").
		Where("faculty_id = ? AND course_id = ?", facultyID, courseID).
		Count(&teaching).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch students"})
	}
	if teaching == 0 {
		return c.JSON(http.StatusForbidden, map[string]any{"message": "Access denied. Faculty does not teach this course."})
	}

	type row struct {
		StudentID  uint   `json:"student_id"`
		Name       string `json:"name"`
		RollNumber string `json:"roll_number"`
	}
	var rows []row
	err := database.DB.Table("students AS s").
		Select("s.student_id, s.name, s.roll_number").
		Joins("JOIN enrollments e ON e.student_id = s.student_id").
		Where("e.course_id = ? AND s.status = ?", courseID, "Active").
		Order("s.roll_number").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch students"})
	}
	if rows == nil {
		rows = []row{}
	}
	return c.JSON(http.StatusOK, rows)
}
