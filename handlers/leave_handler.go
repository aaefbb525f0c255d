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

// LeaveHandler: students submit leave requests, faculty review them.
type LeaveHandler struct{}

func NewLeaveHandler() *LeaveHandler { return &LeaveHandler{} }

type leaveSubmitReq struct {
	Type     string `json:"type" validate:"required,oneof=Sick Personal Other"`
	Reason   string `json:"reason" validate:"required"`
	DateFrom string `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"dateTo" validate:"required,datetime=2006-01-02"`
}

// POST /student/leave-requests
func (h *LeaveHandler) Submit(c echo.Context) error {
	var req leaveSubmitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid payload"})
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid payload"})
	}
	if req.DateTo < req.DateFrom {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "dateTo must not be before dateFrom"})
	}

	rec := models.LeaveRequest{
		StudentID: principalID(c),
		Type:      req.Type,
		Reason:    req.Reason,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Status:    "Pending",
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to submit leave request"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Leave request submitted successfully",
		"id":      rec.ID,
	})
}

// GET /student/leave-requests lists the caller's own requests, newest first.
func (h *LeaveHandler) ListOwn(c echo.Context) error {
	var rows []models.LeaveRequest
	err := database.DB.Where("student_id = ?", principalID(c)).
		Order("submitted_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch leave requests"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /faculty/leave-requests?status=&studentId=
func (h *LeaveHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.LeaveRequest{})

	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if studentID := strings.TrimSpace(c.QueryParam("studentId")); studentID != "" {
		tx = tx.Where("student_id = ?", studentID)
	}

	var rows []models.LeaveRequest
	if err := tx.Order("submitted_at DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to fetch leave requests"})
	}
	return c.JSON(http.StatusOK, rows)
}

type leaveDecisionReq struct {
	RejectReason string `json:"rejectReason"`
}

// POST /faculty/leave-requests/:id/approve
func (h *LeaveHandler) Approve(c echo.Context) error {
	return h.decide(c, "Approved", "")
}

// POST /faculty/leave-requests/:id/reject
func (h *LeaveHandler) Reject(c echo.Context) error {
	var req leaveDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Invalid payload"})
	}
	reason := strings.TrimSpace(req.RejectReason)
	if reason == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"message": "Reject reason is required"})
	}
	return h.decide(c, "Rejected", reason)
}

func (h *LeaveHandler) decide(c echo.Context, status, rejectReason string) error {
	var row models.LeaveRequest
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"message": "Leave request not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to update leave request"})
	}
	if row.Status != "Pending" {
		return c.JSON(http.StatusConflict, map[string]any{"message": "Leave request already decided"})
	}

	now := time.Now()
	facultyID := principalID(c)
	updates := map[string]any{
		"status":        status,
		"decided_at":    &now,
		"decided_by":    facultyID,
		"reject_reason": rejectReason,
	}
	if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "Failed to update leave request"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Leave request " + strings.ToLower(status)})
}
