// Package editortest provides an in-memory EditorAdapter for tests
package editortest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Notifuse/designer/internal/domain"
)

// FakeEditor is ready as soon as it is mounted unless HoldReady is set.
// ExportHTML returns the last loaded design unchanged.
type FakeEditor struct {
	// HoldReady keeps Ready open after Mount until MarkReady is called
	HoldReady bool
	// HTML is returned by ExportHTML
	HTML string
	// ExportErr, MountErr and LoadErr make the matching call fail
	ExportErr error
	MountErr  error
	LoadErr   error

	mu          sync.Mutex
	ready       chan struct{}
	isReady     bool
	design      json.RawMessage
	listeners   []func()
	imageSelect domain.ImageSelectFunc

	Mounts       []domain.EditorConfig
	Locales      []string
	Unmounts     int
	LoadedDesign []json.RawMessage
	Exports      int
}

func New() *FakeEditor {
	return &FakeEditor{
		HTML:  "<html><body>fake</body></html>",
		ready: make(chan struct{}),
	}
}

func (f *FakeEditor) Mount(ctx context.Context, cfg domain.EditorConfig, locale string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MountErr != nil {
		return f.MountErr
	}
	f.Mounts = append(f.Mounts, cfg)
	f.Locales = append(f.Locales, locale)
	f.ready = make(chan struct{})
	f.isReady = false
	f.design = nil
	f.listeners = nil
	f.imageSelect = nil
	if !f.HoldReady {
		f.markReadyLocked()
	}
	return nil
}

// MarkReady closes the ready channel of the current mount
func (f *FakeEditor) MarkReady() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markReadyLocked()
}

func (f *FakeEditor) markReadyLocked() {
	if !f.isReady {
		f.isReady = true
		close(f.ready)
	}
}

func (f *FakeEditor) Ready() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ready == nil {
		f.ready = make(chan struct{})
	}
	return f.ready
}

func (f *FakeEditor) LoadDesign(ctx context.Context, design json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return f.LoadErr
	}
	if !f.isReady {
		return domain.ErrEditorNotReady
	}
	f.design = append(json.RawMessage(nil), design...)
	f.LoadedDesign = append(f.LoadedDesign, f.design)
	return nil
}

func (f *FakeEditor) ExportHTML(ctx context.Context) (*domain.ExportedDesign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Exports++
	if f.ExportErr != nil {
		return nil, f.ExportErr
	}
	if !f.isReady {
		return nil, domain.ErrEditorNotReady
	}
	design := f.design
	if design == nil {
		design = json.RawMessage(`{}`)
	}
	return &domain.ExportedDesign{
		Design: append(json.RawMessage(nil), design...),
		HTML:   f.HTML,
	}, nil
}

func (f *FakeEditor) OnDesignChanged(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *FakeEditor) OnImageSelect(fn domain.ImageSelectFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageSelect = fn
}

func (f *FakeEditor) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Unmounts++
	f.isReady = false
	f.ready = make(chan struct{})
	f.listeners = nil
	f.imageSelect = nil
}

// ChangeDesign replaces the design as a user edit would and fires listeners
func (f *FakeEditor) ChangeDesign(design json.RawMessage) {
	f.mu.Lock()
	f.design = append(json.RawMessage(nil), design...)
	listeners := append([]func(){}, f.listeners...)
	f.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}

// SelectImage triggers the registered image callback and returns the URL
// passed to done, if any
func (f *FakeEditor) SelectImage(ctx context.Context) (string, bool) {
	f.mu.Lock()
	fn := f.imageSelect
	f.mu.Unlock()
	if fn == nil {
		return "", false
	}
	var url string
	var called bool
	fn(ctx, func(u string) {
		url = u
		called = true
	})
	return url, called
}

// MountCount is the number of successful mounts
func (f *FakeEditor) MountCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Mounts)
}

// LastConfig returns the configuration of the latest mount
func (f *FakeEditor) LastConfig() domain.EditorConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Mounts) == 0 {
		return domain.EditorConfig{}
	}
	return f.Mounts[len(f.Mounts)-1]
}
