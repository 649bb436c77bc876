package sqldb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shiprate/shiprate-server/internal/model"
)

// Open connects the relational backend and migrates the schema.
// driver is "postgres" or "sqlite"; dsn is driver-specific.
func Open(driver, dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("sqldb: unsupported driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.Ship{},
		&model.Rating{},
		&model.UserProfile{},
		&model.Feedback{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
