package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/acadportal/AMSBackend/models"
)

// ReferenceDepartments is the department catalog inserted on a fresh
// database. Rows already present are left untouched.
var ReferenceDepartments = []models.Department{
	{Code: "CSE", Name: "Computer Science and Engineering"},
	{Code: "ECE", Name: "Electronics and Communication Engineering"},
	{Code: "ME", Name: "Mechanical Engineering"},
	{Code: "CE", Name: "Civil Engineering"},
}

// ReferenceCourses is the course catalog inserted on a fresh database.
var ReferenceCourses = []models.Course{
	{Code: "CS101", Name: "Data Structures", Description: "Linear and tree structures, hashing, asymptotic analysis."},
	{Code: "CS102", Name: "Operating Systems", Description: "Processes, scheduling, memory management, file systems."},
	{Code: "EC201", Name: "Digital Circuits", Description: "Combinational and sequential logic design."},
	{Code: "ME301", Name: "Thermodynamics", Description: "Laws of thermodynamics, cycles, heat transfer basics."},
}

// seedReference loads the department and course catalogs. Lookup is by
// code so reruns and concurrent replicas are safe.
func seedReference(db *gorm.DB) error {
	for _, d := range ReferenceDepartments {
		var row models.Department
		err := db.Where(models.Department{Code: d.Code}).
			Attrs(models.Department{Name: d.Name}).
			FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("seed department %s: %w", d.Code, err)
		}
	}
	for _, c := range ReferenceCourses {
		var row models.Course
		err := db.Where(models.Course{Code: c.Code}).
			Attrs(models.Course{Name: c.Name, Description: c.Description}).
			FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("seed course %s: %w", c.Code, err)
		}
	}
	return nil
}
