package schema

// TableDefinitions contains the SQL statements creating the template store tables
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS email_templates (
		id BIGSERIAL PRIMARY KEY,
		template_reference_id INTEGER,
		name VARCHAR(255) NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		body_text TEXT NOT NULL DEFAULT '',
		body_html TEXT NOT NULL DEFAULT '',
		design JSONB,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_email_templates_reference_id
		ON email_templates (template_reference_id)
		WHERE template_reference_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS core_email_templates (
		type VARCHAR(64) PRIMARY KEY,
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		body_text TEXT NOT NULL DEFAULT '',
		design JSONB,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// CoreTemplateSeed is the legacy content a core email starts with
type CoreTemplateSeed struct {
	Type    string
	Subject string
	Message string
}

// CoreTemplateSeeds are inserted once. They carry no design so the first
// edit goes through the legacy conversion.
var CoreTemplateSeeds = []CoreTemplateSeed{
	{
		Type:    "user-address-confirmation",
		Subject: "Account confirmation",
		Message: "<p>Thank you for registering!</p>\n<p>You have to confirm your email address. Please click on the link below.</p>\n<p><%= URL %>?confirmation=<%= CODE %></p>\n<p>Thanks.</p>",
	},
	{
		Type:    "reset-password",
		Subject: "Reset password",
		Message: "<p>We heard that you lost your password. Sorry about that!</p>\n<p>But don't worry! You can use the following link to reset your password:</p>\n<p><%= URL %>?code=<%= TOKEN %></p>\n<p>Thanks.</p>",
	},
}
