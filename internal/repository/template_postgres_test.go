package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/i18n"
	"github.com/Notifuse/designer/internal/repository/testutil"
)

func intPtr(v int) *int { return &v }

func TestTemplateRepository_GetTemplate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTemplateRepository(db)
	selectQuery := regexp.QuoteMeta("SELECT id, template_reference_id, name, subject, body_text, body_html, design FROM email_templates WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		design := []byte(`{"body":{"rows":[]}}`)
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(42)).
			WillReturnRows(testutil.TemplateRows(42, intPtr(3), "Welcome", "Hello", "text", "<p>hi</p>", design))

		tpl, err := repo.GetTemplate(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), tpl.ID)
		require.NotNil(t, tpl.TemplateReferenceID)
		assert.Equal(t, 3, *tpl.TemplateReferenceID)
		assert.Equal(t, "Welcome", tpl.Name)
		assert.JSONEq(t, string(design), string(tpl.Design))
	})

	t.Run("null reference and design", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(5)).
			WillReturnRows(testutil.TemplateRows(5, nil, "Draft", "", "", "", nil))

		tpl, err := repo.GetTemplate(context.Background(), 5)
		require.NoError(t, err)
		assert.Nil(t, tpl.TemplateReferenceID)
		assert.Nil(t, tpl.Design)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(testutil.TemplateColumns))

		tpl, err := repo.GetTemplate(context.Background(), 9)
		assert.Nil(t, tpl)
		var notFound *domain.ErrNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "9", notFound.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetTemplate(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get template")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_CreateTemplate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTemplateRepository(db)
	req := &domain.SaveTemplateRequest{
		Name:                "Welcome",
		TemplateReferenceID: intPtr(3),
		Subject:             "Hello",
		Design:              json.RawMessage(`{"body":{}}`),
		BodyHTML:            "<p>hi</p>",
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO email_templates .* RETURNING id`).
			WithArgs(int64(3), "Welcome", "Hello", "", "<p>hi</p>", []byte(`{"body":{}}`), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(testutil.TemplateRows(11, intPtr(3), "Welcome", "Hello", "", "<p>hi</p>", []byte(`{"body":{}}`)))

		tpl, err := repo.CreateTemplate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(11), tpl.ID)
	})

	t.Run("duplicate reference id", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO email_templates`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.CreateTemplate(context.Background(), req)
		var fieldErr *domain.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, i18n.KeyReferenceIDTaken, fieldErr.Key)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("other failure", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO email_templates`).
			WillReturnError(errors.New("disk full"))

		_, err := repo.CreateTemplate(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create template")
		assert.False(t, domain.IsValidationError(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_UpdateTemplate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTemplateRepository(db)
	req := &domain.SaveTemplateRequest{
		Name:                "Renamed",
		TemplateReferenceID: intPtr(4),
		Design:              json.RawMessage(`{}`),
	}

	t.Run("success stores empty design as null", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE email_templates SET .* WHERE id = \$8 RETURNING`).
			WithArgs(int64(4), "Renamed", "", "", "", nil, sqlmock.AnyArg(), int64(7)).
			WillReturnRows(testutil.TemplateRows(7, intPtr(4), "Renamed", "", "", "", nil))

		tpl, err := repo.UpdateTemplate(context.Background(), 7, req)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", tpl.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE email_templates`).
			WillReturnRows(sqlmock.NewRows(testutil.TemplateColumns))

		_, err := repo.UpdateTemplate(context.Background(), 8, req)
		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_CoreTemplates(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTemplateRepository(db)

	t.Run("get legacy core email", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT type, subject, message, body_text, design FROM core_email_templates WHERE type = $1")).
			WithArgs("reset-password").
			WillReturnRows(sqlmock.NewRows(testutil.CoreTemplateColumns).
				AddRow("reset-password", "Reset", "<p><%= URL %></p>", "", nil))

		core, err := repo.GetCoreTemplate(context.Background(), domain.CoreEmailResetPassword)
		require.NoError(t, err)
		assert.Equal(t, domain.CoreEmailResetPassword, core.Type)
		assert.Equal(t, "<p><%= URL %></p>", core.Message)
		assert.Nil(t, core.Design)
	})

	t.Run("get missing core email", func(t *testing.T) {
		mock.ExpectQuery(`FROM core_email_templates`).
			WithArgs("user-address-confirmation").
			WillReturnRows(sqlmock.NewRows(testutil.CoreTemplateColumns))

		_, err := repo.GetCoreTemplate(context.Background(), domain.CoreEmailUserAddressConfirmation)
		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("save upserts", func(t *testing.T) {
		design := []byte(`{"body":{"rows":[1]}}`)
		mock.ExpectQuery(`INSERT INTO core_email_templates .* ON CONFLICT \(type\) DO UPDATE SET`).
			WithArgs("reset-password", "Reset", "<p>new</p>", "plain", design, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(testutil.CoreTemplateColumns).
				AddRow("reset-password", "Reset", "<p>new</p>", "plain", design))

		core, err := repo.SaveCoreTemplate(context.Background(), domain.CoreEmailResetPassword, &domain.SaveCoreTemplateRequest{
			Subject:  "Reset",
			Message:  "<p>new</p>",
			BodyText: "plain",
			Design:   json.RawMessage(design),
		})
		require.NoError(t, err)
		assert.JSONEq(t, string(design), string(core.Design))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
