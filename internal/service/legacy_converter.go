package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/pkg/designdoc"
	"github.com/Notifuse/designer/pkg/striptags"
)

// legacyAllowedTags survive stripping; % and %= are the legacy template delimiters
var legacyAllowedTags = []string{"a", "img", "strong", "b", "i", "%", "%="}

var legacyDelimiters = strings.NewReplacer(
	"<%", "{{",
	"&#x3C;%", "{{",
	"%>", "}}",
	"%&#x3E;", "}}",
)

// LegacyConverter turns the HTML body of a core email that predates the
// visual editor into a starter design document
type LegacyConverter struct {
	starter json.RawMessage
}

func NewLegacyConverter() *LegacyConverter {
	return &LegacyConverter{starter: designdoc.StarterTemplate()}
}

var defaultLegacyConverter = NewLegacyConverter()

// ConvertLegacyMessage converts with the default starter document
func ConvertLegacyMessage(message string) (json.RawMessage, error) {
	return defaultLegacyConverter.Convert(message)
}

// Convert returns the starter design with its placeholder replaced by the
// cleaned-up message. Failures are *domain.LegacyConversionError.
func (c *LegacyConverter) Convert(message string) (json.RawMessage, error) {
	fragment, err := c.Fragment(message)
	if err != nil {
		return nil, &domain.LegacyConversionError{Err: err}
	}

	encoded, err := jsonStringContent(fragment)
	if err != nil {
		return nil, &domain.LegacyConversionError{Err: err}
	}

	doc := strings.Replace(string(c.starter), designdoc.Placeholder, encoded, 1)
	if !json.Valid([]byte(doc)) {
		var probe interface{}
		return nil, &domain.LegacyConversionError{Err: json.Unmarshal([]byte(doc), &probe)}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(doc)); err != nil {
		return nil, &domain.LegacyConversionError{Err: err}
	}
	return compact.Bytes(), nil
}

// Fragment returns the markup that ends up in the starter's text block.
// Allowed tags keep their attributes as written; text is not re-encoded.
func (c *LegacyConverter) Fragment(message string) (string, error) {
	text := message
	if strings.Contains(message, "<body") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(message))
		if err != nil {
			return "", fmt.Errorf("failed to parse legacy html: %w", err)
		}
		text = doc.Find("body").Text()
	}

	text = striptags.Strip(text, legacyAllowedTags...)
	text = legacyDelimiters.Replace(text)
	text = strings.ReplaceAll(text, `"`, "'")
	text = strings.ReplaceAll(text, "\n", "<br />")
	return text, nil
}

// jsonStringContent returns s encoded as the inside of a JSON string literal
func jsonStringContent(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	return out[1 : len(out)-1], nil
}
