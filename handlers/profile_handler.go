package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/acadportal/AMSBackend/database"
	"github.com/acadportal/AMSBackend/models"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler { return &ProfileHandler{} }

type studentProfile struct {
	StudentID   uint    `json:"student_id"`
	Name        string  `json:"name"`
	RollNumber  string  `json:"roll_number"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
	Department  string  `json:"department"`
}

func loadStudentProfile(studentID uint) (*studentProfile, error) {
	var p studentProfile
	err := database.DB.Table("students AS s").
		Select("s.student_id, s.name, s.roll_number, s.email, s.phone, s.address, "+
			"TO_CHAR(s.date_of_birth, 'YYYY-MM-DD') AS date_of_birth, d.name AS department").
		Joins("LEFT JOIN departments d ON d.id = s.department_id").
		Where("s.student_id = ?", studentID).
		Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.StudentID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

// GET /student/profile
func (h *ProfileHandler) GetStudent(c echo.Context) error {
	p, err := loadStudentProfile(principalID(c))
	if err == gorm.ErrRecordNotFound {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Student not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch student profile"})
	}
	return c.JSON(http.StatusOK, map[string]any{"student": p})
}

type studentProfileUpdate struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

// PUT /student/profile
func (h *ProfileHandler) UpdateStudent(c echo.Context) error {
	studentID := principalID(c)

	var req studentProfileUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid payload"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid payload"})
	}

	var existing models.Student
	if err := database.DB.First(&existing, "student_id = ?", studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Student not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}

	updates := map[string]any{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   strings.TrimSpace(req.Phone),
		"address": strings.TrimSpace(req.Address),
	}
	if req.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", req.DateOfBirth); err == nil {
			updates["date_of_birth"] = dob
		}
	}
	if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}

	p, err := loadStudentProfile(studentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Student profile updated successfully",
		"student": p,
	})
}

// GET /faculty/profile
func (h *ProfileHandler) GetFaculty(c echo.Context) error {
	type facultyProfile struct {
		FacultyID      uint   `json:"faculty_id"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		Position       string `json:"position"`
		Specialization string `json:"specialization"`
		Department     string `json:"department"`
	}
	var p facultyProfile
	err := database.DB.Table("faculty AS f").
		Select("f.faculty_id, f.name, f.email, f.phone, f.position, f.specialization, d.name AS department").
		Joins("LEFT JOIN departments d ON d.id = f.department_id").
		Where("f.faculty_id = ?", principalID(c)).
		Scan(&p).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch faculty profile"})
	}
	if p.FacultyID == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Faculty not found"})
	}
	return c.JSON(http.StatusOK, p)
}
