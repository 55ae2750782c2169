package designdoc

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ContentRenderer rewrites the content of a text-like block before it is
// written out, e.g. to substitute merge tags with sample values.
type ContentRenderer func(blockID, content string) (string, error)

// ToMJML converts a design document to MJML markup
func ToMJML(root *Block) string {
	// without a renderer the conversion cannot fail
	out, _ := ToMJMLWithRenderer(root, nil)
	return out
}

// ToMJMLWithRenderer converts a design document to MJML markup, passing the
// content of text, button, title, preview and raw blocks through render.
func ToMJMLWithRenderer(root *Block, render ContentRenderer) (string, error) {
	if root == nil {
		return "", fmt.Errorf("design document is nil")
	}
	return convertBlock(root, 0, render)
}

func convertBlock(b *Block, indentLevel int, render ContentRenderer) (string, error) {
	indent := strings.Repeat("  ", indentLevel)
	tagName := string(b.Type)
	attrs := formatAttributes(b.Attributes)

	if len(b.Children) == 0 {
		content := ""
		if b.Content != nil {
			content = *b.Content
		}
		if content == "" {
			return fmt.Sprintf("%s<%s%s />", indent, tagName, attrs), nil
		}

		if render != nil && b.Type != BlockStyle {
			rendered, err := render(b.ID, content)
			if err != nil {
				return "", fmt.Errorf("failed to render content of block %s: %w", b.ID, err)
			}
			content = rendered
		}

		// text, button and raw blocks carry HTML
		switch b.Type {
		case BlockText, BlockButton, BlockRaw, BlockStyle:
			return fmt.Sprintf("%s<%s%s>%s</%s>", indent, tagName, attrs, content, tagName), nil
		default:
			return fmt.Sprintf("%s<%s%s>%s</%s>", indent, tagName, attrs, escapeContent(content), tagName), nil
		}
	}

	children := make([]string, 0, len(b.Children))
	for _, child := range b.Children {
		if child == nil {
			continue
		}
		out, err := convertBlock(child, indentLevel+1, render)
		if err != nil {
			return "", err
		}
		children = append(children, out)
	}

	return fmt.Sprintf("%s<%s%s>\n%s\n%s</%s>", indent, tagName, attrs, strings.Join(children, "\n"), indent, tagName), nil
}

// formatAttributes renders attributes in key order so output is stable
func formatAttributes(attributes map[string]interface{}) string {
	if len(attributes) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attributes))
	for k := range attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(formatSingleAttribute(key, attributes[key]))
	}
	return sb.String()
}

func formatSingleAttribute(key string, value interface{}) string {
	kebabKey := camelToKebab(key)

	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return " " + kebabKey
		}
		return ""
	case string:
		if v == "" {
			return ""
		}
		return fmt.Sprintf(` %s="%s"`, kebabKey, escapeAttributeValue(v, kebabKey))
	case map[string]interface{}, []interface{}:
		// nested editor properties have no MJML attribute form
		return ""
	default:
		s := fmt.Sprintf("%v", v)
		if s == "" {
			return ""
		}
		return fmt.Sprintf(` %s="%s"`, kebabKey, escapeAttributeValue(s, kebabKey))
	}
}

var upperCase = regexp.MustCompile("([A-Z])")

func camelToKebab(str string) string {
	return upperCase.ReplaceAllStringFunc(str, func(match string) string {
		return "-" + strings.ToLower(match)
	})
}

// escapeAttributeValue keeps & intact in absolute URLs so query strings survive
func escapeAttributeValue(value string, attributeName string) string {
	isURLAttribute := attributeName == "src" || attributeName == "href"
	looksLikeURL := strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") || strings.HasPrefix(value, "//")

	if !(isURLAttribute && looksLikeURL) {
		value = strings.ReplaceAll(value, "&", "&amp;")
	}
	value = strings.ReplaceAll(value, "\"", "&quot;")
	value = strings.ReplaceAll(value, "'", "&#39;")
	value = strings.ReplaceAll(value, "<", "&lt;")
	value = strings.ReplaceAll(value, ">", "&gt;")
	return value
}

func escapeContent(content string) string {
	content = strings.ReplaceAll(content, "&", "&amp;")
	content = strings.ReplaceAll(content, "<", "&lt;")
	content = strings.ReplaceAll(content, ">", "&gt;")
	return content
}
