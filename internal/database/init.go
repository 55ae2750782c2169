package database

import (
	"database/sql"
	"fmt"

	"github.com/Notifuse/designer/internal/database/schema"
)

// InitializeDatabase creates the template store tables if they don't exist
// and inserts the core emails that are missing
func InitializeDatabase(db *sql.DB) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, seed := range schema.CoreTemplateSeeds {
		_, err := db.Exec(`
			INSERT INTO core_email_templates (type, subject, message)
			VALUES ($1, $2, $3)
			ON CONFLICT (type) DO NOTHING
		`, seed.Type, seed.Subject, seed.Message)
		if err != nil {
			return fmt.Errorf("failed to seed core email %s: %w", seed.Type, err)
		}
	}

	return nil
}
