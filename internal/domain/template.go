package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

//go:generate mockgen -destination mocks/mock_template_store.go -package mocks github.com/Notifuse/designer/internal/domain TemplateStore
//go:generate mockgen -destination mocks/mock_template_repository.go -package mocks github.com/Notifuse/designer/internal/domain TemplateRepository

// TemplateID identifies a user template in routes: a positive integer or "new"
type TemplateID string

// NewTemplateID is the route sentinel for a template that does not exist yet
const NewTemplateID TemplateID = "new"

// ParseTemplateID validates a raw route segment
func ParseTemplateID(raw string) (TemplateID, error) {
	raw = strings.TrimSpace(raw)
	if raw == string(NewTemplateID) {
		return NewTemplateID, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return "", NewValidationError(fmt.Sprintf("template id must be a positive integer or %q, got %q", NewTemplateID, raw))
	}
	return TemplateID(strconv.FormatInt(n, 10)), nil
}

// TemplateIDFromInt converts a stored id to its route form
func TemplateIDFromInt(id int64) TemplateID {
	return TemplateID(strconv.FormatInt(id, 10))
}

func (id TemplateID) IsNew() bool {
	return id == NewTemplateID
}

// Int64 returns the numeric id; ok is false for "new" and malformed ids
func (id TemplateID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (id TemplateID) String() string {
	return string(id)
}

// Template is a user-defined email template as exchanged with the template store
type Template struct {
	ID                  int64           `json:"id,omitempty"`
	TemplateReferenceID *int            `json:"templateReferenceId"`
	Name                string          `json:"name"`
	Subject             string          `json:"subject"`
	BodyText            string          `json:"bodyText"`
	BodyHTML            string          `json:"bodyHtml"`
	Design              json.RawMessage `json:"design,omitempty"`
}

// Clone returns a deep copy so callers can mutate fields independently
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	out := *t
	if t.TemplateReferenceID != nil {
		ref := *t.TemplateReferenceID
		out.TemplateReferenceID = &ref
	}
	if t.Design != nil {
		out.Design = append(json.RawMessage(nil), t.Design...)
	}
	return &out
}

// SaveTemplateRequest is the body of POST /{plugin}/templates/{id}
type SaveTemplateRequest struct {
	Name                string          `json:"name"`
	TemplateReferenceID *int            `json:"templateReferenceId"`
	Subject             string          `json:"subject"`
	Design              json.RawMessage `json:"design"`
	BodyText            string          `json:"bodyText"`
	BodyHTML            string          `json:"bodyHtml"`
}

func (r *SaveTemplateRequest) Validate() error {
	if r.TemplateReferenceID == nil {
		return NewValidationError("templateReferenceId is required")
	}
	if r.Name == "" {
		return NewValidationError("name is required")
	}
	if DesignIsEmpty(r.Design) {
		return NewValidationError("design is required")
	}
	return nil
}

// DesignIsEmpty reports whether a design document is absent: missing, null,
// an empty object, an empty array or an empty string.
func DesignIsEmpty(design json.RawMessage) bool {
	trimmed := bytes.TrimSpace(design)
	switch string(trimmed) {
	case "", "null", "{}", "[]", `""`:
		return true
	}
	if len(trimmed) > 1 && (trimmed[0] == '{' || trimmed[0] == '[') {
		// whitespace-only objects such as "{ }"
		inner := bytes.TrimSpace(trimmed[1 : len(trimmed)-1])
		return len(inner) == 0
	}
	return false
}
