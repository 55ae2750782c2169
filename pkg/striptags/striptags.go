// Package striptags removes markup from a string while keeping an explicit
// allow-list of tags verbatim. Tag names are whatever follows the opening
// bracket up to whitespace, a slash or the closing bracket, so pseudo-tags
// such as the legacy <% %> and <%= %> delimiters can be allowed by name.
package striptags

import (
	"regexp"
	"strings"
)

type state int

const (
	statePlaintext state = iota
	stateHTML
	stateComment
)

var tagNamePattern = regexp.MustCompile(`^</?([^\s/>]+)`)

// Strip returns input with every tag removed except the allowed ones.
// Text content is never altered; unterminated tags at the end are dropped.
func Strip(input string, allowed ...string) string {
	allow := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allow[strings.ToLower(name)] = struct{}{}
	}

	var out, tag strings.Builder
	st := statePlaintext
	depth := 0
	var inQuote rune

	for _, ch := range input {
		switch st {
		case statePlaintext:
			if ch == '<' {
				st = stateHTML
				tag.WriteRune(ch)
				continue
			}
			out.WriteRune(ch)

		case stateHTML:
			switch ch {
			case '<':
				// nested brackets are counted, not kept
				if inQuote == 0 {
					depth++
				}
			case '>':
				if inQuote != 0 {
					continue
				}
				if depth > 0 {
					depth--
					continue
				}
				st = statePlaintext
				tag.WriteRune(ch)
				if _, ok := allow[normalizeTag(tag.String())]; ok {
					out.WriteString(tag.String())
				}
				tag.Reset()
			case '"', '\'':
				if ch == inQuote {
					inQuote = 0
				} else if inQuote == 0 {
					inQuote = ch
				}
				tag.WriteRune(ch)
			case '-':
				if tag.String() == "<!-" {
					st = stateComment
				}
				tag.WriteRune(ch)
			case ' ', '\n':
				// a lone "<" followed by whitespace is text, not a tag
				if tag.String() == "<" {
					st = statePlaintext
					out.WriteRune('<')
					out.WriteRune(ch)
					tag.Reset()
					continue
				}
				tag.WriteRune(ch)
			default:
				tag.WriteRune(ch)
			}

		case stateComment:
			if ch == '>' {
				if strings.HasSuffix(tag.String(), "--") {
					st = statePlaintext
				}
				tag.Reset()
				continue
			}
			tag.WriteRune(ch)
		}
	}

	return out.String()
}

func normalizeTag(tag string) string {
	m := tagNamePattern.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
