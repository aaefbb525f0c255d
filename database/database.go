package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/acadportal/AMSBackend/config"
	"github.com/acadportal/AMSBackend/models"
)

var DB *gorm.DB

// Connect opens the PostgreSQL connection, migrates the schema and loads
// the reference catalogs. Fails fast if the database is unreachable.
func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Department{},
		&models.Course{},
		&models.Student{},
		&models.Faculty{},
		&models.User{},
		&models.CourseAssignment{},
		&models.Enrollment{},
		&models.AttendanceAggregate{},
		&models.AttendanceEvent{},
		&models.AbsenceRecord{},
		&models.LeaveRequest{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	if err := seedReference(DB); err != nil {
		log.Fatalf("seed reference data failed: %v", err)
	}
}
