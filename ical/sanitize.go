package ical

import (
	"html"
	"regexp"
	"strings"
)

var (
	breakTags    = regexp.MustCompile(`(?i)<\s*br\s*/?\s*>|</\s*(?:p|div)\s*>`)
	anyTag       = regexp.MustCompile(`(?s)</?[a-zA-Z][^<>]*>`)
	manyNewlines = regexp.MustCompile(`\n{3,}`)
)

// Sanitize turns the portal's free-text markup into plain text:
// line-break producing tags become newlines, remaining tags are
// stripped, character entities are decoded, and runs of three or more
// newlines collapse to a blank line. Malformed markup degrades
// gracefully, anything the tag pattern does not match stays literal.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = breakTags.ReplaceAllString(s, "\n")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = manyNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Escape applies RFC 5545 TEXT escaping. It is applied exactly once,
// at field serialization time, never before Sanitize.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	b := strings.Builder{}
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case ';':
			b.WriteString(`\;`)
		case ',':
			b.WriteString(`\,`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
