package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/i18n"
)

// unique_violation
const pqUniqueViolation = "23505"

var templateColumns = []string{
	"id", "template_reference_id", "name", "subject", "body_text", "body_html", "design",
}

var coreTemplateColumns = []string{
	"type", "subject", "message", "body_text", "design",
}

type templateRepository struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

// NewTemplateRepository creates a new PostgreSQL template repository
func NewTemplateRepository(db *sql.DB) domain.TemplateRepository {
	return &templateRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *templateRepository) GetTemplate(ctx context.Context, id int64) (*domain.Template, error) {
	query, args, err := r.psql.Select(templateColumns...).
		From("email_templates").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tpl, err := scanTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrNotFound{Entity: "template", ID: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tpl, nil
}

func (r *templateRepository) CreateTemplate(ctx context.Context, req *domain.SaveTemplateRequest) (*domain.Template, error) {
	now := time.Now().UTC()

	query, args, err := r.psql.Insert("email_templates").
		Columns("template_reference_id", "name", "subject", "body_text", "body_html", "design", "created_at", "updated_at").
		Values(nullableRef(req.TemplateReferenceID), req.Name, req.Subject, req.BodyText, req.BodyHTML, nullableDesign(req.Design), now, now).
		Suffix("RETURNING id, template_reference_id, name, subject, body_text, body_html, design").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tpl, err := scanTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateWriteError("create template", err)
	}
	return tpl, nil
}

func (r *templateRepository) UpdateTemplate(ctx context.Context, id int64, req *domain.SaveTemplateRequest) (*domain.Template, error) {
	query, args, err := r.psql.Update("email_templates").
		Set("template_reference_id", nullableRef(req.TemplateReferenceID)).
		Set("name", req.Name).
		Set("subject", req.Subject).
		Set("body_text", req.BodyText).
		Set("body_html", req.BodyHTML).
		Set("design", nullableDesign(req.Design)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, template_reference_id, name, subject, body_text, body_html, design").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tpl, err := scanTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrNotFound{Entity: "template", ID: strconv.FormatInt(id, 10)}
		}
		return nil, translateWriteError("update template", err)
	}
	return tpl, nil
}

func (r *templateRepository) GetCoreTemplate(ctx context.Context, emailType domain.CoreEmailType) (*domain.CoreTemplate, error) {
	query, args, err := r.psql.Select(coreTemplateColumns...).
		From("core_email_templates").
		Where(sq.Eq{"type": emailType.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	core, err := scanCoreTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrNotFound{Entity: "core email", ID: emailType.String()}
		}
		return nil, fmt.Errorf("failed to get core email: %w", err)
	}
	return core, nil
}

// SaveCoreTemplate upserts the row; the message column keeps the rendered HTML
func (r *templateRepository) SaveCoreTemplate(ctx context.Context, emailType domain.CoreEmailType, req *domain.SaveCoreTemplateRequest) (*domain.CoreTemplate, error) {
	query, args, err := r.psql.Insert("core_email_templates").
		Columns("type", "subject", "message", "body_text", "design", "updated_at").
		Values(emailType.String(), req.Subject, req.Message, req.BodyText, nullableDesign(req.Design), time.Now().UTC()).
		Suffix(`ON CONFLICT (type) DO UPDATE SET
			subject = EXCLUDED.subject,
			message = EXCLUDED.message,
			body_text = EXCLUDED.body_text,
			design = EXCLUDED.design,
			updated_at = EXCLUDED.updated_at
			RETURNING type, subject, message, body_text, design`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	core, err := scanCoreTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to save core email: %w", err)
	}
	return core, nil
}

func scanTemplate(row *sql.Row) (*domain.Template, error) {
	var (
		tpl    domain.Template
		ref    sql.NullInt64
		design []byte
	)
	if err := row.Scan(&tpl.ID, &ref, &tpl.Name, &tpl.Subject, &tpl.BodyText, &tpl.BodyHTML, &design); err != nil {
		return nil, err
	}
	if ref.Valid {
		v := int(ref.Int64)
		tpl.TemplateReferenceID = &v
	}
	if len(design) > 0 {
		tpl.Design = json.RawMessage(design)
	}
	return &tpl, nil
}

func scanCoreTemplate(row *sql.Row) (*domain.CoreTemplate, error) {
	var (
		core      domain.CoreTemplate
		emailType string
		design    []byte
	)
	if err := row.Scan(&emailType, &core.Subject, &core.Message, &core.BodyText, &design); err != nil {
		return nil, err
	}
	core.Type = domain.CoreEmailType(emailType)
	if len(design) > 0 {
		core.Design = json.RawMessage(design)
	}
	return &core, nil
}

func nullableRef(ref *int) interface{} {
	if ref == nil {
		return nil
	}
	return int64(*ref)
}

func nullableDesign(design json.RawMessage) interface{} {
	if domain.DesignIsEmpty(design) {
		return nil
	}
	return []byte(design)
}

// translateWriteError turns a duplicate reference id into a field error
func translateWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return &domain.FieldError{Field: "templateReferenceId", Key: i18n.KeyReferenceIDTaken}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
