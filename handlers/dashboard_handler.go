package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadportal/AMSBackend/database"
	"github.com/acadportal/AMSBackend/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /admin/dashboard returns headline counts for the admin landing page.
func (h *DashboardHandler) Summary(c echo.Context) error {
	var (
		cntStudents int64
		cntFaculty  int64
		cntCourses  int64
		cntPending  int64
	)
	database.DB.Model(&models.Student{}).Count(&cntStudents)
	database.DB.Model(&models.Faculty{}).Count(&cntFaculty)
	database.DB.Model(&models.Course{}).Count(&cntCourses)
	database.DB.Model(&models.LeaveRequest{}).Where("status = ?", "Pending").Count(&cntPending)

	return c.JSON(http.StatusOK, map[string]any{
		"message":        "Welcome to admin dashboard",
		"students":       cntStudents,
		"faculty":        cntFaculty,
		"courses":        cntCourses,
		"pending_leaves": cntPending,
	})
}
