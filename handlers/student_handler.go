package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/acadportal/AMSBackend/database"
	"github.com/acadportal/AMSBackend/models"
)

// StudentHandler is the admin-facing roster CRUD.
type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	RollNumber  string `json:"rollNumber" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email"`
	Department  string `json:"department" validate:"required"` // department code
	Password    string `json:"password" validate:"omitempty,min=4"`
	Phone       string `json:"phone" validate:"omitempty,max=15"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

func (p *studentPayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.RollNumber = strings.TrimSpace(p.RollNumber)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Department = strings.TrimSpace(p.Department)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
}

func departmentIDByCode(code string) (uint, bool) {
	var d models.Department
	if err := database.DB.Where("code = ?", code).First(&d).Error; err != nil {
		return 0, false
	}
	return d.ID, true
}

// GET /students
func (h *StudentHandler) List(c echo.Context) error {
	type row struct {
		StudentID   uint    `json:"student_id"`
		Name        string  `json:"name"`
		RollNumber  string  `json:"roll_number"`
		Email       string  `json:"email"`
		Phone       string  `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		Department  string  `json:"department"`
	}
	var rows []row
	err := database.DB.Table("students AS s").
		Select("s.student_id, s.name, s.roll_number, s.email, s.phone, " +
			"TO_CHAR(s.date_of_birth, 'YYYY-MM-DD') AS date_of_birth, d.name AS department").
		Joins("LEFT JOIN departments d ON d.id = s.department_id").
		Order("s.name").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch students"})
	}
	if rows == nil {
		rows = []row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /students/:id
func (h *StudentHandler) Get(c echo.Context) error {
	type row struct {
		StudentID   uint    `json:"student_id"`
		Name        string  `json:"name"`
		RollNumber  string  `json:"roll_number"`
		Email       string  `json:"email"`
		Phone       string  `json:"phone"`
		Address     string  `json:"address"`
		DateOfBirth *string `json:"date_of_birth"`
		Department  string  `json:"department"`
	}
	var r row
	err := database.DB.Table("students AS s").
		Select("s.student_id, s.name, s.roll_number, s.email, s.phone, s.address, "+
			"TO_CHAR(s.date_of_birth, 'YYYY-MM-DD') AS date_of_birth, d.code AS department").
		Joins("LEFT JOIN departments d ON d.id = s.department_id").
		Where("s.student_id = ?", c.Param("id")).
		Scan(&r).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch student details"})
	}
	if r.StudentID == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"message": "Student not found"})
	}
	return c.JSON(http.StatusOK, r)
}

// POST /add-student
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "All fields are required"})
	}
	p.normalize()
	if p.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "All fields are required"})
	}
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "All fields are required"})
	}

	var dup models.Student
	if err := database.DB.Where("email = ?", p.Email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Student with this email already exists"})
	}

	deptID, ok := departmentIDByCode(p.Department)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Unknown department"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}

	s := models.Student{
		Name:           p.Name,
		RollNumber:     p.RollNumber,
		Email:          p.Email,
		Password:       string(hash),
		DepartmentID:   deptID,
		Phone:          p.Phone,
		Address:        p.Address,
		Status:         "Active",
		EnrollmentDate: time.Now(),
	}
	if p.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
			s.DateOfBirth = &dob
		}
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Student added successfully"})
}

// PUT /students/:id updates only the supplied fields.
func (h *StudentHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Student
	if err := database.DB.First(&existing, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Student not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to update student"})
	}

	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid payload"})
	}
	p.normalize()

	updates := map[string]any{}
	if p.Name != "" {
		updates["name"] = p.Name
	}
	if p.RollNumber != "" {
		updates["roll_number"] = p.RollNumber
	}
	if p.Email != "" {
		var clash models.Student
		if err := database.DB.Where("email = ? AND student_id != ?", p.Email, id).
			First(&clash).Error; err == nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"message": "Email is already in use by another student"})
		}
		updates["email"] = p.Email
	}
	if p.Department != "" {
		deptID, ok := departmentIDByCode(p.Department)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]any{"message": "Unknown department"})
		}
		updates["department_id"] = deptID
	}
	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Internal Server Error"})
		}
		updates["password"] = string(hash)
	}
	if p.Phone != "" {
		updates["phone"] = p.Phone
	}
	if p.Address != "" {
		updates["address"] = p.Address
	}
	if p.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
			updates["date_of_birth"] = dob
		}
	}

	if len(updates) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "No fields to update"})
	}
	if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to update student"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Student updated successfully"})
}

// DELETE /students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var existing models.Student
	if err := database.DB.First(&existing, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Student not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to delete student"})
	}
	if err := database.DB.Delete(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to delete student"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Student deleted successfully"})
}
