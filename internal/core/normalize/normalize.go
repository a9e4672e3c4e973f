// Package normalize folds prompt words into lexicon lookup keys and reports
// Yoruba orthography signals used by the tagger
// Pipeline order for Key
// 1 sanitize controls and drop invalid UTF-8
// 2 Unicode NFC composition
// 3 Case folding
// 4 Trim punctuation and symbols from both edges (inner apostrophes and hyphens stay)
// Bare additionally strips combining marks so "ọjà" and "oja" share a key
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh key chains (NFC + fold)
var keyPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC, cases.Fold())
	},
}

// pool of fresh mark-stripping chains (decompose, drop Mn, recompose)
var barePool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// Key returns the lookup key for a single token following the pipeline above
func Key(word string) string {
	if word == "" {
		return ""
	}
	s := Sanitize(word)

	tr := keyPool.Get().(transform.Transformer)
	s, _, _ = transform.String(tr, s)
	tr.Reset()
	keyPool.Put(tr)

	return trimEdges(s)
}

// Bare returns Key with every combining mark removed
func Bare(word string) string {
	k := Key(word)
	if k == "" {
		return ""
	}
	tr := barePool.Get().(transform.Transformer)
	out, _, _ := transform.String(tr, k)
	tr.Reset()
	barePool.Put(tr)
	return out
}

// Yoruba tone marks and the dot below used by ẹ ọ ṣ, after NFD decomposition
const (
	markGrave    = '̀'
	markAcute    = '́'
	markMacron   = '̄'
	markDotBelow = '̣'
)

// HasYorubaMarks reports whether word carries a dot below (ẹ ọ ṣ) or a tone mark
func HasYorubaMarks(word string) bool {
	for _, r := range norm.NFD.String(word) {
		switch r {
		case markGrave, markAcute, markMacron, markDotBelow:
			return true
		}
	}
	return false
}

// trimEdges strips anything that is not a letter, number or mark from both ends
func trimEdges(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.Is(unicode.Mn, r)
	})
}

// HasLetter reports whether s contains at least one letter
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
