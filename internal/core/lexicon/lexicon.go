// Package lexicon loads the embedded English and Yoruba word lists used by the tagger
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"promptcorrector/internal/core/normalize"
)

//go:embed lexicon.json
var embedded []byte

type rawLexicon struct {
	Version int            `json:"version"`
	Meta    map[string]any `json:"meta"`
	Yoruba  []string       `json:"yo"`
	English []string       `json:"en"`
}

// Lexicon holds folded word sets, keyed by normalize.Key and normalize.Bare forms
type Lexicon struct {
	Version int
	yoruba  map[string]struct{}
	english map[string]struct{}
}

var (
	loadOnce sync.Once
	loaded   *Lexicon
	loadErr  error
)

// Load returns the lexicon compiled from the embedded lexicon.json; the result is shared
func Load() (*Lexicon, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(embedded)
	})
	return loaded, loadErr
}

// Parse builds a Lexicon from raw JSON in the lexicon.json shape
func Parse(b []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: decode: %w", err)
	}
	if len(raw.Yoruba) == 0 && len(raw.English) == 0 {
		return nil, fmt.Errorf("lexicon: no words")
	}
	return New(raw.Version, raw.Yoruba, raw.English), nil
}

// New folds the given word lists into a Lexicon
func New(version int, yoruba, english []string) *Lexicon {
	return &Lexicon{
		Version: version,
		yoruba:  fold(yoruba),
		english: fold(english),
	}
}

// IsYoruba reports whether word (marked or bare) is on the Yoruba list
func (l *Lexicon) IsYoruba(word string) bool { return l.has(l.yoruba, word) }

// IsEnglish reports whether word is on the English list
func (l *Lexicon) IsEnglish(word string) bool { return l.has(l.english, word) }

// Size returns the number of distinct keys per list
func (l *Lexicon) Size() (yoruba, english int) {
	if l == nil {
		return 0, 0
	}
	return len(l.yoruba), len(l.english)
}

func (l *Lexicon) has(set map[string]struct{}, word string) bool {
	if l == nil || word == "" {
		return false
	}
	if _, ok := set[normalize.Key(word)]; ok {
		return true
	}
	_, ok := set[normalize.Bare(word)]
	return ok
}

func fold(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if k := normalize.Key(w); k != "" {
			out[k] = struct{}{}
		}
		if b := normalize.Bare(w); b != "" {
			out[b] = struct{}{}
		}
	}
	return out
}
