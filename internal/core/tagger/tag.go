package tagger

import "fmt"

// Tag is a per-word language label
type Tag string

// Tag values
const (
	English Tag = "en"
	Yoruba  Tag = "yo"
)

// Valid reports whether t is one of the known tags
func (t Tag) Valid() bool { return t == English || t == Yoruba }

// Flip returns the other tag; unknown tags are returned unchanged
func (t Tag) Flip() Tag {
	switch t {
	case English:
		return Yoruba
	case Yoruba:
		return English
	}
	return t
}

// ParseTag validates s as a Tag
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown language tag %q", s)
	}
	return t, nil
}

// TaggedWord pairs a whitespace token with its language tag; the index in
// the owning slice is its alignment key
type TaggedWord struct {
	Word string `json:"word"`
	Tag  Tag    `json:"tag"`
}

// Toggle returns a copy of words with the tag at index i flipped.
// An out of range index returns the input copy and false
func Toggle(words []TaggedWord, i int) ([]TaggedWord, bool) {
	out := make([]TaggedWord, len(words))
	copy(out, words)
	if i < 0 || i >= len(out) {
		return out, false
	}
	out[i].Tag = out[i].Tag.Flip()
	return out, true
}

// Words returns the bare word sequence
func Words(words []TaggedWord) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}

// Equal reports whether a and b carry the same words and tags in the same order
func Equal(a, b []TaggedWord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CarryOver retags next using the tags of prev wherever the word at the same
// position is byte-identical; other positions keep the tags next already has
func CarryOver(prev, next []TaggedWord) []TaggedWord {
	out := make([]TaggedWord, len(next))
	copy(out, next)
	for i := range out {
		if i < len(prev) && prev[i].Word == out[i].Word {
			out[i].Tag = prev[i].Tag
		}
	}
	return out
}
