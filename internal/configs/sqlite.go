package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

// New opens the database and migrates the schema. TranslateError makes the
// assignment uniqueness violation surface as gorm.ErrDuplicatedKey instead of
// a driver-specific error.
func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.TaskHistory{},
		&model.TaskAssignee{},
		&model.TaskComment{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
