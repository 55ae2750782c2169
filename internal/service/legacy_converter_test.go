package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/pkg/designdoc"
)

func convertedText(t *testing.T, message string) string {
	t.Helper()
	raw, err := ConvertLegacyMessage(message)
	require.NoError(t, err)

	doc, err := designdoc.Parse(raw)
	require.NoError(t, err)
	require.NoError(t, designdoc.Validate(doc))

	texts := doc.TextContents()
	require.Len(t, texts, 1)
	return texts[0]
}

func TestConvertLegacyMessage(t *testing.T) {
	t.Run("reset password message", func(t *testing.T) {
		assert.Equal(t, "Hello {{ USER }}<br />Bye", convertedText(t, "Hello <% USER %>\nBye"))
	})

	t.Run("output delimiter", func(t *testing.T) {
		assert.Equal(t, "Hi {{= USER.firstname }}", convertedText(t, "Hi <%= USER.firstname %>"))
	})

	t.Run("entity encoded delimiters", func(t *testing.T) {
		assert.Equal(t, "Hi {{ NAME }}", convertedText(t, "Hi &#x3C;% NAME %&#x3E;"))
	})

	t.Run("keeps only the body text of a full document", func(t *testing.T) {
		message := `<html><head><title>Title</title></head><body><p>Hi <% USER %></p><div>there</div></body></html>`
		assert.Equal(t, "Hi {{ USER }}there", convertedText(t, message))
	})

	t.Run("strips disallowed tags", func(t *testing.T) {
		text := convertedText(t, `<div><p>Hello</p><script>x()</script><strong>bold</strong></div>`)
		assert.Equal(t, "Hellox()<strong>bold</strong>", text)
	})

	t.Run("text quotes become single quotes", func(t *testing.T) {
		assert.Equal(t, "Click 'here' {{ URL }}", convertedText(t, `Click "here" <% URL %>`))
		assert.Equal(t, `Say 'hello' to C:\temp`+"\t!", convertedText(t, `Say "hello" to C:\temp`+"\t!"))
	})

	t.Run("text is not entity encoded", func(t *testing.T) {
		assert.Equal(t, "Don't worry & relax", convertedText(t, "Don't worry & relax"))
	})

	t.Run("links keep their attributes", func(t *testing.T) {
		text := convertedText(t, `Click <a href="https://example.com/reset" target="_blank">here</a>`)
		assert.Equal(t, "Click <a href='https://example.com/reset' target='_blank'>here</a>", text)
	})

	t.Run("links with legacy template text in href survive", func(t *testing.T) {
		// brackets inside a quoted attribute are dropped by the tag scanner
		text := convertedText(t, `<a href="<%= URL %>?code=<%= CODE %>">reset</a>`)
		assert.Equal(t, "<a href='%= URL %?code=%= CODE %'>reset</a>", text)
	})

	t.Run("allowed tags and delimiters", func(t *testing.T) {
		text := convertedText(t, "<% NAME %> and <%= OTHER %>\n<b><% LAST %></b> <img src=\"https://example.com/a.png\">")
		assert.Equal(t, "{{ NAME }} and {{= OTHER }}<br /><b>{{ LAST }}</b> <img src='https://example.com/a.png'>", text)
	})

	t.Run("empty message", func(t *testing.T) {
		assert.Equal(t, "", convertedText(t, ""))
	})
}

func TestLegacyConverter_MalformedStarter(t *testing.T) {
	converter := &LegacyConverter{
		starter: json.RawMessage(`{"content": __PLACEHOLDER__}`),
	}

	_, err := converter.Convert("Hello")

	var convErr *domain.LegacyConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Error(t, convErr.Unwrap())
}

func TestJSONStringContent(t *testing.T) {
	out, err := jsonStringContent("a<b>\\\"c\n")
	require.NoError(t, err)
	assert.Equal(t, `a<b>\\\"c\n`, out)
}
