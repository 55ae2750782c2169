package designdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMJML(t *testing.T) {
	doc := simpleDocument()
	doc.Find("section").Attributes = map[string]interface{}{
		"paddingTop":      "20px",
		"backgroundColor": "#fff",
		"fullWidth":       false,
		"nested":          map[string]interface{}{"ignored": true},
	}

	expected := strings.Join([]string{
		`<mjml>`,
		`  <mj-body>`,
		`    <mj-section background-color="#fff" padding-top="20px">`,
		`      <mj-column>`,
		`        <mj-text>Hello</mj-text>`,
		`        <mj-image src="https://example.com/a.png" />`,
		`        <mj-text>World</mj-text>`,
		`      </mj-column>`,
		`    </mj-section>`,
		`  </mj-body>`,
		`</mjml>`,
	}, "\n")

	assert.Equal(t, expected, ToMJML(doc))
}

func TestToMJMLEscaping(t *testing.T) {
	doc := &Block{ID: "root", Type: BlockMjml, Children: []*Block{
		{ID: "head", Type: BlockHead, Children: []*Block{
			{ID: "title", Type: BlockTitle, Content: strPtr("Fish & <Chips>")},
		}},
		{ID: "body", Type: BlockBody, Children: []*Block{
			{ID: "s", Type: BlockSection, Children: []*Block{
				{ID: "c", Type: BlockColumn, Children: []*Block{
					{ID: "t", Type: BlockText, Content: strPtr("<b>bold</b>")},
					{ID: "b", Type: BlockButton, Attributes: map[string]interface{}{
						"href":  "https://example.com/?a=1&b=2",
						"title": `say "hi" & 'bye'`,
					}, Content: strPtr("Go")},
				}},
			}},
		}},
	}}

	out := ToMJML(doc)
	assert.Contains(t, out, "<mj-title>Fish &amp; &lt;Chips&gt;</mj-title>")
	assert.Contains(t, out, "<mj-text><b>bold</b></mj-text>")
	assert.Contains(t, out, `href="https://example.com/?a=1&b=2"`)
	assert.Contains(t, out, `title="say &quot;hi&quot; &amp; &#39;bye&#39;"`)
}

func TestToMJMLWithRenderer(t *testing.T) {
	doc := simpleDocument()

	out, err := ToMJMLWithRenderer(doc, func(id, content string) (string, error) {
		return strings.ToUpper(content), nil
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<mj-text>HELLO</mj-text>")
	assert.Contains(t, out, "<mj-text>WORLD</mj-text>")

	_, err = ToMJMLWithRenderer(doc, func(id, content string) (string, error) {
		return "", errors.New("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text-1")

	_, err = ToMJMLWithRenderer(nil, nil)
	assert.Error(t, err)
}

func TestCamelToKebab(t *testing.T) {
	assert.Equal(t, "background-color", camelToKebab("backgroundColor"))
	assert.Equal(t, "src", camelToKebab("src"))
	assert.Equal(t, "fluid-on-mobile", camelToKebab("fluidOnMobile"))
}
