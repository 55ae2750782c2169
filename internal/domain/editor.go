package domain

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination mocks/mock_editor_adapter.go -package mocks github.com/Notifuse/designer/internal/domain EditorAdapter

// ExportedDesign is what the editor produces on export
type ExportedDesign struct {
	Design json.RawMessage `json:"design"`
	HTML   string          `json:"html"`
}

// ImageSelectFunc is invoked when the editor asks for an image. done must be
// called with the chosen URL; it is not called when selection is abandoned.
type ImageSelectFunc func(ctx context.Context, done func(url string))

// EditorAdapter abstracts the visual design widget
type EditorAdapter interface {
	// Mount tears down any previous state and initializes with cfg.
	// Ready is replaced by a fresh channel on every Mount.
	Mount(ctx context.Context, cfg EditorConfig, locale string) error
	Ready() <-chan struct{}
	LoadDesign(ctx context.Context, design json.RawMessage) error
	// ExportHTML fails with ErrEditorNotReady when the widget is not ready
	ExportHTML(ctx context.Context) (*ExportedDesign, error)
	OnDesignChanged(fn func())
	OnImageSelect(fn ImageSelectFunc)
	Unmount()
}
