package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// TemplateColumns is the column list returned by email_templates queries
var TemplateColumns = []string{
	"id", "template_reference_id", "name", "subject", "body_text", "body_html", "design",
}

// CoreTemplateColumns is the column list returned by core_email_templates queries
var CoreTemplateColumns = []string{
	"type", "subject", "message", "body_text", "design",
}

// SetupMockDB creates a mock database connection for testing
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

// TemplateRows builds a single email_templates row. A nil ref or design is
// returned as SQL NULL.
func TemplateRows(id int64, ref *int, name, subject, bodyText, bodyHTML string, design []byte) *sqlmock.Rows {
	var refValue interface{}
	if ref != nil {
		refValue = int64(*ref)
	}
	var designValue interface{}
	if design != nil {
		designValue = design
	}
	return sqlmock.NewRows(TemplateColumns).
		AddRow(id, refValue, name, subject, bodyText, bodyHTML, designValue)
}
