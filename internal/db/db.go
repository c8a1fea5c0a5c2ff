package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"soundthread/internal/models"
	"soundthread/internal/utils"
)

// Open connects using the named driver ("postgres" or "sqlite") and migrates
// the schema. The handle is returned to the caller and injected from there.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	utils.LogSuccess("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates or updates every relation.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Post{},
		&models.Tags{},
		&models.Comment{},
		&models.Reply{},
		&models.Like{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	utils.LogSuccess("Database migration completed")
	return nil
}
