package tagcodec

import (
	"testing"

	"promptcorrector/internal/core/tagger"
	perr "promptcorrector/internal/platform/errors"
)

func TestEncode_Shape(t *testing.T) {
	b, err := Encode([]tagger.TaggedWord{{Word: "Mo", Tag: tagger.Yoruba}, {Word: "market", Tag: tagger.English}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `[{"word":"Mo","tag":"yo"},{"word":"market","tag":"en"}]`
	if string(b) != want {
		t.Fatalf("Encode = %s, want %s", b, want)
	}

	empty, err := Encode(nil)
	if err != nil || string(empty) != "[]" {
		t.Fatalf("Encode(nil) = %s, %v", empty, err)
	}
}

func TestRoundTrip_TaggerOutput(t *testing.T) {
	tg, err := tagger.Default(tagger.English)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, text := range []string{"", "Mo n lọ sí market", "\"Ẹ kú iṣẹ́\", thank you!", "a  b\tc"} {
		words := tg.TagWords(text)
		b, err := Encode(words)
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		back, err := Decode(b)
		if err != nil {
			t.Fatalf("Decode(%q): %v", text, err)
		}
		if !tagger.Equal(words, back) {
			t.Fatalf("round trip mismatch for %q: %+v != %+v", text, back, words)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unknown tag", in: `[{"word":"bonjour","tag":"fr"}]`},
		{name: "missing tag", in: `[{"word":"x"}]`},
		{name: "not an array", in: `{"word":"x","tag":"en"}`},
		{name: "truncated", in: `[{"word":"x","tag":"en"}`},
		{name: "unknown field", in: `[{"word":"x","tag":"en","color":"blue"}]`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestDecode_EmptyForms(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "[]"} {
		got, err := Decode([]byte(in))
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("Decode(%q) = %+v, %v", in, got, err)
		}
	}
}

func TestEncode_RejectsUnknownTag(t *testing.T) {
	if _, err := Encode([]tagger.TaggedWord{{Word: "x", Tag: "fr"}}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestColorize(t *testing.T) {
	got := Colorize([]tagger.TaggedWord{{Word: "Mo", Tag: tagger.Yoruba}, {Word: "market", Tag: tagger.English}})
	if got[0].Color != Red || got[1].Color != Blue {
		t.Fatalf("Colorize = %+v", got)
	}
	if len(Colorize(nil)) != 0 {
		t.Fatalf("Colorize(nil) should be empty")
	}
}
