package wer

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"surrounding_and_internal_whitespace",
			"     It is consumed domestically           and exported to other countries.     ",
			"it is consumed domestically and exported to other countries",
		},
		{
			"commas_and_capitals",
			"Rufino Street in Makati, right inside the Makati Central Business District.",
			"rufino street in makati right inside the makati central business district",
		},
		{
			"apostrophe_joins_word",
			"it's estuary is considered to have abnormally low rates of dissolved oxygen",
			"its estuary is considered to have abnormally low rates of dissolved oxygen",
		},
		{"punctuation_only", "!?...", ""},
		{"empty", "", ""},
		{"tabs_and_newlines", "a\tb\nc", "a b c"},
		{"already_normalized", "taxes are a tool in the adjustment of the economy", "taxes are a tool in the adjustment of the economy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.text); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{
		"The Sugar Bear character was popular enough to have occasional premium toys.",
		"Gadya is the nearest rural locality.",
	})
	want := []string{
		"the sugar bear character was popular enough to have occasional premium toys",
		"gadya is the nearest rural locality",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAll() = %q, want %q", got, want)
	}
}

func TestNormalizeDoesNotChangeScoringImplicitly(t *testing.T) {
	// Scoring is case and punctuation sensitive unless the caller
	// normalizes first.
	raw, ok := Compute("Hello, world!", "hello world")
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if raw != 1 {
		t.Errorf("raw Compute() = %v, want 1 (both words differ)", raw)
	}

	normalized, ok := Compute(Normalize("Hello, world!"), Normalize("hello world"))
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if normalized != 0 {
		t.Errorf("normalized Compute() = %v, want 0", normalized)
	}
}
