// scripts/seed_demo/main.go
//
// Loads a minimal working data set on top of the reference catalogs: one
// faculty member assigned to every course and three enrolled students.
// Safe to rerun; existing rows are kept.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acadportal/AMSBackend/config"
	"github.com/acadportal/AMSBackend/database"
	"github.com/acadportal/AMSBackend/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	db := database.DB

	password := os.Getenv("DEMO_PASSWORD")
	if password == "" {
		log.Fatal("set DEMO_PASSWORD")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var cse models.Department
	if err := db.Where("code = ?", "CSE").First(&cse).Error; err != nil {
		log.Fatalf("failed to load CSE department: %v", err)
	}

	var fac models.Faculty
	err = db.Where(models.Faculty{Email: "demo.faculty@campus.edu"}).
		Attrs(models.Faculty{
			Name:         "Demo Faculty",
			Password:     string(hashed),
			DepartmentID: cse.ID,
			Position:     "Assistant Professor",
		}).
		FirstOrCreate(&fac).Error
	if err != nil {
		log.Fatalf("failed to insert faculty: %v", err)
	}

	var courses []models.Course
	if err := db.Order("course_id").Find(&courses).Error; err != nil {
		log.Fatalf("failed to load courses: %v", err)
	}
	for _, c := range courses {
		var a models.CourseAssignment
		err := db.Where(models.CourseAssignment{FacultyID: fac.ID, CourseID: c.ID}).
			FirstOrCreate(&a).Error
		if err != nil {
			log.Fatalf("failed to assign course %s: %v", c.Code, err)
		}
	}

	demoStudents := []models.Student{
		{Name: "Asha Verma", RollNumber: "CSE2024001", Email: "asha.verma@campus.edu"},
		{Name: "Rahul Nair", RollNumber: "CSE2024002", Email: "rahul.nair@campus.edu"},
		{Name: "Meera Iyer", RollNumber: "CSE2024003", Email: "meera.iyer@campus.edu"},
	}
	for _, s := range demoStudents {
		var row models.Student
		err := db.Where(models.Student{RollNumber: s.RollNumber}).
			Attrs(models.Student{
				Name:           s.Name,
				Email:          s.Email,
				Password:       string(hashed),
				DepartmentID:   cse.ID,
				Status:         "Active",
				EnrollmentDate: time.Now(),
			}).
			FirstOrCreate(&row).Error
		if err != nil {
			log.Fatalf("failed to insert student %s: %v", s.RollNumber, err)
		}
		for _, c := range courses {
			var e models.Enrollment
			err := db.Where(models.Enrollment{StudentID: row.ID, CourseID: c.ID}).
				FirstOrCreate(&e).Error
			if err != nil {
				log.Fatalf("failed to enroll %s in %s: %v", s.RollNumber, c.Code, err)
			}
		}
	}

	fmt.Printf("demo data ready: faculty %s, %d courses, %d students\n",
		fac.Email, len(courses), len(demoStudents))
}
