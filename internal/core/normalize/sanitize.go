package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes runes we don't want in stored prompt text:
// - NUL and ASCII controls except '\n', '\r', '\t'
// - DEL (0x7F)
// - C1 controls U+0080..U+009F
// Invalid UTF-8 bytes are dropped. Clean input is returned unchanged
func Sanitize(s string) string {
	if s == "" || isClean(s) {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		if dropRune(r) {
			return -1
		}
		return r
	}, s)
}

// StripQuotes trims surrounding whitespace and double quotes, the way spreadsheet
// exports wrap a prompt cell
func StripQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

func isClean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if dropRune(r) {
			return false
		}
	}
	return true
}

func dropRune(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20, r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}
