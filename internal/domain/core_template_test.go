package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoreEmailType_Validate(t *testing.T) {
	for _, emailType := range CoreEmailTypes() {
		assert.NoError(t, emailType.Validate(), emailType.String())
	}
	assert.Error(t, CoreEmailType("welcome").Validate())
	assert.Error(t, CoreEmailType("").Validate())
}

func TestSaveCoreTemplateRequest_Validate(t *testing.T) {
	req := &SaveCoreTemplateRequest{Subject: "s"}
	assert.Error(t, req.Validate())

	req.Design = json.RawMessage(`{"id":"root"}`)
	assert.NoError(t, req.Validate())
}

func TestCoreTemplate_AsTemplate(t *testing.T) {
	core := &CoreTemplate{
		Type:     CoreEmailResetPassword,
		Subject:  "Reset",
		Message:  "<p>legacy</p>",
		BodyText: "text",
		Design:   json.RawMessage(`{"a":1}`),
	}

	tpl := core.AsTemplate()
	assert.Equal(t, "Reset", tpl.Subject)
	assert.Equal(t, "<p>legacy</p>", tpl.BodyHTML)
	assert.Equal(t, "text", tpl.BodyText)
	assert.Empty(t, tpl.Name)
	assert.Nil(t, tpl.TemplateReferenceID)
	assert.JSONEq(t, `{"a":1}`, string(tpl.Design))

	assert.Nil(t, (*CoreTemplate)(nil).AsTemplate())
}
