package ical

import (
	"strings"
	"unicode/utf8"
)

// maxOctets is the RFC 5545 limit for a physical content line,
// excluding the CRLF terminator.
const maxOctets = 75

// Fold serializes one logical content line: short lines pass through
// with a CRLF terminator, longer ones are split into a first chunk of
// up to 75 octets and continuation chunks of up to 74 (the leading
// space of a continuation counts against the limit). Splits never land
// inside a UTF-8 sequence.
func Fold(line string) string {
	if len(line) <= maxOctets {
		return line + "\r\n"
	}
	b := strings.Builder{}
	limit := maxOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		if cut == 0 {
			// invalid UTF-8 prefix longer than the limit, split anyway
			cut = limit
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = maxOctets - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
	return b.String()
}

// Unfold reverses Fold over a whole document.
func Unfold(doc string) string {
	return strings.ReplaceAll(doc, "\r\n ", "")
}
