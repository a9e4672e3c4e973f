// Package tagger assigns a per-word English/Yoruba tag to code-switched prompt text.
// Tagging is total and deterministic for a fixed classifier: every whitespace
// token gets exactly one tag and none is dropped
package tagger

import (
	"promptcorrector/internal/core/lexicon"
)

// Tagger tags prompt text through a Classifier
type Tagger struct {
	c Classifier
}

// New returns a Tagger over c
func New(c Classifier) *Tagger {
	if c == nil {
		panic("tagger.New: nil classifier")
	}
	return &Tagger{c: c}
}

// Default returns a Tagger over the embedded lexicon with the given fallback tag
func Default(fallback Tag) (*Tagger, error) {
	lx, err := lexicon.Load()
	if err != nil {
		return nil, err
	}
	return New(NewLexiconClassifier(lx, fallback)), nil
}

// TagWords splits text on whitespace and tags each token in order.
// Empty or all-whitespace text yields an empty, non-nil slice
func (t *Tagger) TagWords(text string) []TaggedWord {
	toks := Tokens(text)
	out := make([]TaggedWord, 0, len(toks))
	for _, tok := range toks {
		tag := t.c.Classify(tok.Text)
		if !tag.Valid() {
			tag = English
		}
		out = append(out, TaggedWord{Word: tok.Text, Tag: tag})
	}
	return out
}

// Retag tags text and carries over the tags of prev at unchanged positions
func (t *Tagger) Retag(prev []TaggedWord, text string) []TaggedWord {
	return CarryOver(prev, t.TagWords(text))
}
