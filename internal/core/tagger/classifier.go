package tagger

import (
	"strings"

	"promptcorrector/internal/core/lexicon"
	"promptcorrector/internal/core/normalize"
)

// Classifier assigns a language tag to a single token
type Classifier interface {
	Classify(word string) Tag
}

// ClassifierFunc adapts a plain function to Classifier
type ClassifierFunc func(word string) Tag

// Classify implements Classifier
func (f ClassifierFunc) Classify(word string) Tag { return f(word) }

// LexiconClassifier is the default heuristic:
// orthography first, then the word lists, then Yoruba syllable shape,
// otherwise Fallback
type LexiconClassifier struct {
	Lex      *lexicon.Lexicon
	Fallback Tag
}

// NewLexiconClassifier returns a classifier over lx; an invalid fallback becomes English
func NewLexiconClassifier(lx *lexicon.Lexicon, fallback Tag) *LexiconClassifier {
	if !fallback.Valid() {
		fallback = English
	}
	return &LexiconClassifier{Lex: lx, Fallback: fallback}
}

// Classify implements Classifier
func (c *LexiconClassifier) Classify(word string) Tag {
	key := normalize.Key(word)
	if key == "" || !normalize.HasLetter(key) {
		return c.Fallback
	}
	if normalize.HasYorubaMarks(key) {
		return Yoruba
	}
	if c.Lex.IsYoruba(key) {
		return Yoruba
	}
	if c.Lex.IsEnglish(key) {
		return English
	}
	if yorubaShaped(normalize.Bare(key)) {
		return Yoruba
	}
	return c.Fallback
}

// yorubaShaped reports whether every hyphen-separated part of s is built from
// Yoruba alphabet letters in open syllables (CV, V, gb digraph, syllabic n/m,
// optional final nasal n)
func yorubaShaped(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, "-") {
		if !openSyllables(part) {
			return false
		}
	}
	return true
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonant(b byte) bool {
	switch b {
	case 'b', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'm', 'n', 'p', 'r', 's', 't', 'w', 'y':
		return true
	}
	return false
}

func openSyllables(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isVowel(c):
			i++
			// nasalized vowel: trailing n closing the word or before a consonant
			if i < len(s) && s[i] == 'n' && (i+1 == len(s) || !isVowel(s[i+1])) {
				i++
			}
		case c == 'g' && i+1 < len(s) && s[i+1] == 'b':
			if i+2 >= len(s) || !isVowel(s[i+2]) {
				return false
			}
			i += 3
		case (c == 'n' || c == 'm') && (i+1 == len(s) || !isVowel(s[i+1])):
			// syllabic nasal
			i++
		case isConsonant(c):
			if i+1 >= len(s) || !isVowel(s[i+1]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}
