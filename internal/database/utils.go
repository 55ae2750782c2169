package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"

	"github.com/Notifuse/designer/config"
	"github.com/Notifuse/designer/pkg/tracing"
)

// GetConnectionPoolSettings returns connection pool settings based on environment
func GetConnectionPoolSettings() (maxOpen, maxIdle int, maxLifetime time.Duration) {
	if os.Getenv("ENVIRONMENT") == "test" {
		return 5, 2, 2 * time.Minute
	}
	return 10, 10, 20 * time.Minute
}

// DriverName returns the driver used to open connections. With tracing on,
// lib/pq is wrapped with ocsql.
func DriverName(cfg *config.Config) string {
	if cfg.Tracing.Enabled {
		return tracing.RegisterSQLDriver("postgres", &pq.Driver{})
	}
	return "postgres"
}

// Connect opens and pings the template store database
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open(DriverName(cfg), cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxLifetime / 2)

	return db, nil
}
