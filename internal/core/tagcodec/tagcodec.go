// Package tagcodec converts tag sequences to and from their stored JSON form
// and to the colored view used by history
package tagcodec

import (
	"bytes"
	"encoding/json"

	"promptcorrector/internal/core/tagger"
	perr "promptcorrector/internal/platform/errors"
)

// Encode serializes words as a JSON array of {"word","tag"} objects, order preserved.
// A nil sequence encodes as []
func Encode(words []tagger.TaggedWord) ([]byte, error) {
	if words == nil {
		words = []tagger.TaggedWord{}
	}
	for i, w := range words {
		if !w.Tag.Valid() {
			return nil, perr.Newf(perr.ErrorCodeValidation, "language tag %d: unknown tag %q", i, w.Tag)
		}
	}
	b, err := json.Marshal(words)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode language tags")
	}
	return b, nil
}

// Decode parses the stored form back into a sequence and validates every tag.
// Empty input or JSON null decode to an empty sequence
func Decode(b []byte) ([]tagger.TaggedWord, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return []tagger.TaggedWord{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var out []tagger.TaggedWord
	if err := dec.Decode(&out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "malformed language tags")
	}
	if out == nil {
		out = []tagger.TaggedWord{}
	}
	for i, w := range out {
		if !w.Tag.Valid() {
			return nil, perr.Newf(perr.ErrorCodeValidation, "language tag %d: unknown tag %q", i, w.Tag)
		}
	}
	return out, nil
}

// Color is the display color for a tag
type Color string

// Colors used for rendering
const (
	Blue Color = "blue"
	Red  Color = "red"
)

// ColoredWord is a read-only rendering of a tagged word
type ColoredWord struct {
	Word  string     `json:"word"`
	Tag   tagger.Tag `json:"tag"`
	Color Color      `json:"color"`
}

// ColorOf maps English to blue and everything else to red
func ColorOf(t tagger.Tag) Color {
	if t == tagger.English {
		return Blue
	}
	return Red
}

// Colorize renders words for display
func Colorize(words []tagger.TaggedWord) []ColoredWord {
	out := make([]ColoredWord, len(words))
	for i, w := range words {
		out[i] = ColoredWord{Word: w.Word, Tag: w.Tag, Color: ColorOf(w.Tag)}
	}
	return out
}
