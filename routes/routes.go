package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/acadportal/AMSBackend/attendance"
	"github.com/acadportal/AMSBackend/config"
	"github.com/acadportal/AMSBackend/database"
	"github.com/acadportal/AMSBackend/handlers"
	"github.com/acadportal/AMSBackend/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	att := handlers.NewAttendanceHandler(attendance.NewGormStore(database.DB))
	crs := handlers.NewCourseHandler()
	prof := handlers.NewProfileHandler()
	std := handlers.NewStudentHandler()
	lv := handlers.NewLeaveHandler()
	dash := handlers.NewDashboardHandler()

	e.GET("/health", handlers.Health)

	// ===== Public auth =====
	e.POST("/register", auth.Register)
	e.POST("/login", auth.StudentLogin)
	e.POST("/faculty/login", auth.FacultyLogin)
	e.POST("/admin/login", auth.AdminLogin)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Student routes =====
	student := e.Group("/student", authMW, middlewares.RequireRole("student"))
	student.GET("/profile", prof.GetStudent)
	student.PUT("/profile", prof.UpdateStudent)
	student.GET("/attendance", att.StudentAttendance)
	student.POST("/leave-requests", lv.Submit)
	student.GET("/leave-requests", lv.ListOwn)

	// ===== Faculty routes =====
	faculty := e.Group("/faculty", authMW, middlewares.RequireRole("faculty"))
	faculty.GET("/profile", prof.GetFaculty)
	faculty.GET("/courses", crs.ListForFaculty)
	faculty.GET("/course/:courseId/students", crs.ListStudents)
	faculty.POST("/mark-attendance", att.Mark)
	faculty.GET("/leave-requests", lv.List)
	faculty.POST("/leave-requests/:id/approve", lv.Approve)
	faculty.POST("/leave-requests/:id/reject", lv.Reject)

	// ===== Admin routes =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))
	admin.GET("/dashboard", dash.Summary)

	// Roster CRUD keeps the client's original paths.
	adminMW := []echo.MiddlewareFunc{authMW, middlewares.RequireRole("admin")}
	e.GET("/students", std.List, adminMW...)
	e.GET("/students/:id", std.Get, adminMW...)
	e.POST("/add-student", std.Create, adminMW...)
	e.PUT("/students/:id", std.Update, adminMW...)
	e.DELETE("/students/:id", std.Delete, adminMW...)
}
