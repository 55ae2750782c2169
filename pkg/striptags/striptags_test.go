package striptags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	legacy := []string{"a", "img", "strong", "b", "i", "%", "%="}

	tests := []struct {
		name    string
		input   string
		allowed []string
		want    string
	}{
		{"plain text", "Hello world", nil, "Hello world"},
		{"all tags removed", "<p>Hello <em>you</em></p>", nil, "Hello you"},
		{"allowed tags kept", `<p>Go <a href="https://x.io">here</a> <b>now</b></p>`, legacy, `Go <a href="https://x.io">here</a> <b>now</b>`},
		{"allow-list is case insensitive", "<B>x</B>", []string{"b"}, "<B>x</B>"},
		{"legacy delimiters kept", "Hello <% USER %>\nBye", legacy, "Hello <% USER %>\nBye"},
		{"legacy output delimiter kept", "Hi <%= USER.name %>!", legacy, "Hi <%= USER.name %>!"},
		{"legacy delimiters stripped when not allowed", "Hello <% USER %>", []string{"b"}, "Hello "},
		{"quoted brackets stay inside the tag", `<img alt="a > b" src="x.png">`, []string{"img"}, `<img alt="a  b" src="x.png">`},
		{"comments removed", "a<!-- note -->b", legacy, "ab"},
		{"lone bracket is text", "1 < 2", nil, "1 < 2"},
		{"lone bracket before newline is text", "1 <\n2", nil, "1 <\n2"},
		{"unterminated tag dropped", "text <b", legacy, "text "},
		{"nested brackets", "<a <b>>x", nil, "x"},
		{"self closing", "line<br/>next<br />end", legacy, "linenextend"},
		{"unicode text", "Grüße <i>ß</i>", legacy, "Grüße <i>ß</i>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input, tt.allowed...))
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "a", normalizeTag(`<a href="x">`))
	assert.Equal(t, "a", normalizeTag("</A>"))
	assert.Equal(t, "%=", normalizeTag("<%= x %>"))
	assert.Equal(t, "br", normalizeTag("<br/>"))
	assert.Equal(t, "", normalizeTag("< >"))
}
