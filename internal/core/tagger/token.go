package tagger

import (
	"unicode"
	"unicode/utf8"
)

// Token is a maximal run of non-whitespace runes with its byte span [Start,End) in the source
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokens splits text on Unicode whitespace. Punctuation stays attached to its
// token and nothing else is dropped, so the gaps between spans are exactly
// the original whitespace
func Tokens(text string) []Token {
	var out []Token
	start := -1
	for i := 0; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, Token{Text: text[start:i], Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += sz
	}
	if start >= 0 {
		out = append(out, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return out
}
