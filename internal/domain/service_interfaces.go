package domain

import "context"

// TemplateStore is the client side of the plugin's template routes
type TemplateStore interface {
	FetchTemplate(ctx context.Context, id TemplateID) (*Template, error)
	FetchCoreTemplate(ctx context.Context, emailType CoreEmailType) (*CoreTemplate, error)
	SaveTemplate(ctx context.Context, id TemplateID, payload *SaveTemplateRequest) (*Template, error)
	SaveCoreTemplate(ctx context.Context, emailType CoreEmailType, payload *SaveCoreTemplateRequest) (*CoreTemplate, error)
	FetchEditorConfig(ctx context.Context) (*EditorConfigPatch, error)
}

// TemplateRepository persists templates for the development store server
type TemplateRepository interface {
	GetTemplate(ctx context.Context, id int64) (*Template, error)
	CreateTemplate(ctx context.Context, req *SaveTemplateRequest) (*Template, error)
	UpdateTemplate(ctx context.Context, id int64, req *SaveTemplateRequest) (*Template, error)
	GetCoreTemplate(ctx context.Context, emailType CoreEmailType) (*CoreTemplate, error)
	SaveCoreTemplate(ctx context.Context, emailType CoreEmailType, req *SaveCoreTemplateRequest) (*CoreTemplate, error)
}
