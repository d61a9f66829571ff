package database

import (
	"fmt"

	"fieldmate/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (or creates) the on-device database file and migrates the five
// collections. Migration is idempotent: a missing collection means first run
// and is created, never an error.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}

	// Single user, single process: one connection avoids SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Sale{},
		&model.Attendance{},
		&model.Target{},
		&model.CRMIssue{},
		&model.Settings{},
	); err != nil {
		return nil, fmt.Errorf("migrate collections: %w", err)
	}

	return db, nil
}
