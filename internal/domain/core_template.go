package domain

import (
	"encoding/json"
	"fmt"
)

// CoreEmailType tags one of the fixed system emails
type CoreEmailType string

const (
	CoreEmailUserAddressConfirmation CoreEmailType = "user-address-confirmation"
	CoreEmailResetPassword           CoreEmailType = "reset-password"
)

// CoreEmailTypes lists every core email in display order
func CoreEmailTypes() []CoreEmailType {
	return []CoreEmailType{CoreEmailUserAddressConfirmation, CoreEmailResetPassword}
}

func (t CoreEmailType) Validate() error {
	switch t {
	case CoreEmailUserAddressConfirmation, CoreEmailResetPassword:
		return nil
	}
	return NewValidationError(fmt.Sprintf("invalid core email type: %q", string(t)))
}

func (t CoreEmailType) String() string {
	return string(t)
}

// CoreTemplate is a system email. Message holds the legacy HTML body that
// predates the visual editor; once Design is present it is authoritative.
type CoreTemplate struct {
	Type     CoreEmailType   `json:"type,omitempty"`
	Subject  string          `json:"subject"`
	Message  string          `json:"message"`
	BodyText string          `json:"bodyText"`
	Design   json.RawMessage `json:"design,omitempty"`
}

// SaveCoreTemplateRequest is the body of POST /{plugin}/core/{type}
type SaveCoreTemplateRequest struct {
	Subject  string          `json:"subject"`
	Design   json.RawMessage `json:"design"`
	Message  string          `json:"message"`
	BodyText string          `json:"bodyText"`
}

func (r *SaveCoreTemplateRequest) Validate() error {
	if DesignIsEmpty(r.Design) {
		return NewValidationError("design is required")
	}
	return nil
}

// AsTemplate projects a core email onto the editable template shape used by
// the designer page. Name and reference id stay empty: core emails have none.
func (c *CoreTemplate) AsTemplate() *Template {
	if c == nil {
		return nil
	}
	return &Template{
		Subject:  c.Subject,
		BodyText: c.BodyText,
		BodyHTML: c.Message,
		Design:   append(json.RawMessage(nil), c.Design...),
	}
}
