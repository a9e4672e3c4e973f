package normalize

import (
	"testing"
)

func TestKey_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "market", out: "market"},
		{name: "case fold", in: "Market", out: "market"},
		{name: "trailing punctuation", in: "market.", out: "market"},
		{name: "leading and trailing quotes", in: `"Mo`, out: "mo"},
		{name: "inner apostrophe kept", in: "don't!", out: "don't"},
		{name: "inner hyphen kept", in: "(ìyá-àgbà)", out: "ìyá-àgbà"},
		{name: "nfc composes decomposed marks", in: "ọja", out: "ọja"},
		{name: "pure punctuation", in: "...", out: ""},
		{name: "controls dropped", in: "lo\x00", out: "lo"},
		{name: "empty", in: "", out: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Key(tc.in)
			if got != tc.out {
				t.Fatalf("Key(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := Key(got); again != got {
				t.Fatalf("Key not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestBare_StripsMarks(t *testing.T) {
	cases := map[string]string{
		"Ọjà":    "oja",
		"ṣé":     "se",
		"ẹ̀kọ́,": "eko",
		"market": "market",
		"ń":      "n",
	}
	for in, want := range cases {
		if got := Bare(in); got != want {
			t.Fatalf("Bare(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasYorubaMarks(t *testing.T) {
	yes := []string{"ọjà", "ṣe", "Ẹ", "ń", "lọ"}
	no := []string{"market", "Mo", "lo", "the", ""}
	for _, w := range yes {
		if !HasYorubaMarks(w) {
			t.Fatalf("HasYorubaMarks(%q) = false, want true", w)
		}
	}
	for _, w := range no {
		if HasYorubaMarks(w) {
			t.Fatalf("HasYorubaMarks(%q) = true, want false", w)
		}
	}
}

func TestSanitize(t *testing.T) {
	in := string([]byte{0xff, 'M', 'o', 0x00, ' ', 'l', 'o', 0x7f, '\n'})
	if got := Sanitize(in); got != "Mo lo\n" {
		t.Fatalf("Sanitize = %q", got)
	}
	clean := "Mo n lọ sí market"
	if got := Sanitize(clean); got != clean {
		t.Fatalf("Sanitize changed clean input: %q", got)
	}
}

func TestStripQuotes(t *testing.T) {
	if got := StripQuotes(`  "Mo n lo to the market"  `); got != "Mo n lo to the market" {
		t.Fatalf("StripQuotes = %q", got)
	}
	if got := StripQuotes(`""`); got != "" {
		t.Fatalf("StripQuotes on empty quotes = %q", got)
	}
}
