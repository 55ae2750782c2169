package editortest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/designer/internal/domain"
)

var _ domain.EditorAdapter = (*FakeEditor)(nil)

func TestFakeEditor_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := New()
	require.NoError(t, f.Mount(ctx, domain.EditorConfig{}, "en"))
	<-f.Ready()

	design := json.RawMessage(`{"id":"root","type":"mjml","children":[{"id":"b","type":"mj-body"}]}`)
	require.NoError(t, f.LoadDesign(ctx, design))

	exported, err := f.ExportHTML(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(design), string(exported.Design))
}

func TestFakeEditor_NotReady(t *testing.T) {
	ctx := context.Background()
	f := New()
	f.HoldReady = true
	require.NoError(t, f.Mount(ctx, domain.EditorConfig{}, "en"))

	_, err := f.ExportHTML(ctx)
	assert.ErrorIs(t, err, domain.ErrEditorNotReady)

	f.MarkReady()
	<-f.Ready()
	_, err = f.ExportHTML(ctx)
	assert.NoError(t, err)
}

func TestFakeEditor_Callbacks(t *testing.T) {
	ctx := context.Background()
	f := New()
	require.NoError(t, f.Mount(ctx, domain.EditorConfig{}, "fr"))

	changes := 0
	f.OnDesignChanged(func() { changes++ })
	f.ChangeDesign(json.RawMessage(`{"a":1}`))
	assert.Equal(t, 1, changes)

	f.OnImageSelect(func(ctx context.Context, done func(string)) { done("https://cdn.test/a.png") })
	url, ok := f.SelectImage(ctx)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.test/a.png", url)

	f.Unmount()
	f.ChangeDesign(json.RawMessage(`{"a":2}`))
	assert.Equal(t, 1, changes)
	assert.Equal(t, []string{"fr"}, f.Locales)
}
