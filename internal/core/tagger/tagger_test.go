package tagger

import (
	"strings"
	"testing"
	"unicode"

	"promptcorrector/internal/core/lexicon"
)

func mustDefault(t *testing.T) *Tagger {
	t.Helper()
	tg, err := Default(English)
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	return tg
}

func TestTagWords_CodeSwitched(t *testing.T) {
	t.Parallel()
	tg := mustDefault(t)

	got := tg.TagWords("Mo n lọ sí market today.")
	want := []TaggedWord{
		{"Mo", Yoruba},
		{"n", Yoruba},
		{"lọ", Yoruba},
		{"sí", Yoruba},
		{"market", English},
		{"today.", English},
	}
	if !Equal(got, want) {
		t.Fatalf("TagWords mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestClassify_Rules(t *testing.T) {
	t.Parallel()
	lx := lexicon.New(1, []string{"oja"}, []string{"market"})

	tests := []struct {
		name     string
		word     string
		fallback Tag
		want     Tag
	}{
		{name: "punctuation only uses fallback", word: "...", fallback: Yoruba, want: Yoruba},
		{name: "digits use fallback", word: "2024", fallback: English, want: English},
		{name: "dot below", word: "ẹ", fallback: English, want: Yoruba},
		{name: "tone mark", word: "bá", fallback: English, want: Yoruba},
		{name: "yoruba lexicon bare", word: "Oja,", fallback: English, want: Yoruba},
		{name: "english lexicon", word: "MARKET!", fallback: Yoruba, want: English},
		{name: "phonotactic shape", word: "gbogbo", fallback: English, want: Yoruba},
		{name: "hyphenated shape", word: "ile-iwe", fallback: English, want: Yoruba},
		{name: "closed syllables fall back", word: "traffic", fallback: English, want: English},
		{name: "consonant cluster falls back", word: "strong", fallback: English, want: English},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewLexiconClassifier(lx, tc.fallback)
			if got := c.Classify(tc.word); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.word, got, tc.want)
			}
		})
	}
}

func TestNewLexiconClassifier_InvalidFallback(t *testing.T) {
	c := NewLexiconClassifier(lexicon.New(1, nil, []string{"x"}), Tag("fr"))
	if c.Fallback != English {
		t.Fatalf("fallback = %q, want en", c.Fallback)
	}
}

func TestTagWords_TotalAndReconstructs(t *testing.T) {
	t.Parallel()
	tg := mustDefault(t)

	texts := []string{
		"",
		"   ",
		"Mo n lọ sí market",
		"  leading and trailing  ",
		"tabs\tand\nnewlines  double",
		"\"Ẹ kú àárọ̀, how far?\"",
		"!!! ??? ...",
	}
	for _, text := range texts {
		toks := Tokens(text)
		tags := tg.TagWords(text)
		if tags == nil {
			t.Fatalf("TagWords(%q) returned nil", text)
		}
		if len(toks) != len(tags) {
			t.Fatalf("TagWords(%q): %d tags for %d tokens", text, len(tags), len(toks))
		}

		// rebuild from spans and the whitespace between them
		var b strings.Builder
		prev := 0
		for i, tok := range toks {
			gap := text[prev:tok.Start]
			if strings.TrimFunc(gap, unicode.IsSpace) != "" {
				t.Fatalf("non-whitespace gap %q in %q", gap, text)
			}
			b.WriteString(gap)
			b.WriteString(tok.Text)
			prev = tok.End
			if tags[i].Word != tok.Text || !tags[i].Tag.Valid() {
				t.Fatalf("tag %d = %+v for token %q", i, tags[i], tok.Text)
			}
		}
		b.WriteString(text[prev:])
		if b.String() != text {
			t.Fatalf("reconstruction mismatch: %q != %q", b.String(), text)
		}
	}
}

func TestTagWords_Deterministic(t *testing.T) {
	t.Parallel()
	tg := mustDefault(t)
	text := "Ẹ jọ̀ọ́ help me call Mama"
	first := tg.TagWords(text)
	for i := 0; i < 5; i++ {
		if !Equal(first, tg.TagWords(text)) {
			t.Fatalf("TagWords not deterministic")
		}
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()
	words := []TaggedWord{{"Mo", Yoruba}, {"market", English}}

	once, ok := Toggle(words, 1)
	if !ok || once[1].Tag != Yoruba {
		t.Fatalf("Toggle(1) = %+v, %v", once, ok)
	}
	if words[1].Tag != English {
		t.Fatalf("Toggle mutated its input")
	}
	twice, _ := Toggle(once, 1)
	if !Equal(twice, words) {
		t.Fatalf("Toggle not involutive: %+v", twice)
	}

	for _, i := range []int{-1, 2, 100} {
		got, ok := Toggle(words, i)
		if ok || !Equal(got, words) {
			t.Fatalf("Toggle(%d) should be a no-op", i)
		}
	}
}

func TestRetag_CarriesUnchangedPositions(t *testing.T) {
	t.Parallel()
	tg := New(ClassifierFunc(func(string) Tag { return English }))

	prev := []TaggedWord{{"Mo", Yoruba}, {"n", Yoruba}, {"lo", Yoruba}, {"market", English}}
	got := tg.Retag(prev, "Mo n go to the market")
	want := []TaggedWord{
		{"Mo", Yoruba},
		{"n", Yoruba},
		{"go", English},
		{"to", English},
		{"the", English},
		{"market", English},
	}
	if !Equal(got, want) {
		t.Fatalf("Retag mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestParseTag(t *testing.T) {
	if tag, err := ParseTag("yo"); err != nil || tag != Yoruba {
		t.Fatalf("ParseTag(yo) = %q, %v", tag, err)
	}
	if _, err := ParseTag("EN"); err == nil {
		t.Fatalf("expected error for EN")
	}
	if Tag("xx").Flip() != Tag("xx") {
		t.Fatalf("Flip on unknown tag should be identity")
	}
}

func TestNew_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = New(nil)
}
