package main

import "testing"

func TestTransliterate_RoundTrip(t *testing.T) {
	for i, r := range SquareDouble.runes() {
		thin := Transliterate(r, SquareDouble, SquareSingle)
		if want := SquareSingle.runes()[i]; thin != want {
			t.Errorf("position %d: %q -> %q, want %q", i, r, thin, want)
		}
		if back := Transliterate(thin, SquareSingle, SquareDouble); back != r {
			t.Errorf("position %d: round trip %q -> %q -> %q", i, r, thin, back)
		}
	}
}

func TestTransliterate_Unknown(t *testing.T) {
	for _, r := range []rune{'ö', 'o', 'x', '╭'} {
		if got := Transliterate(r, SquareDouble, SquareSingle); got != r {
			t.Errorf("%q should be returned unchanged, got %q", r, got)
		}
	}
}
