package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a gorm handle against the given PostgreSQL URL.
func Connect(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRecord{},
		&technicianRecord{},
		&customerRecord{},
		&jobRecord{},
	)
}

// Ping verifies database connectivity, for readiness probes.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
