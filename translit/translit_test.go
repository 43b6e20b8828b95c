package translit_test

import (
	"testing"

	"github.com/steosofficial/sanskritmorphy/translit"
)

func TestToInternalScenarios(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a ā i ī u ū ṛ ṝ ḷ ḹ", "a A i I u U f F x X"},
		{"e ai o au ṃ ḥ", "e E o O M H"},
		{"k kh g gh ṅ", "k K g G N"},
		{"c ch j jh ñ", "c C j J Y"},
		{"ṭ ṭh ḍ ḍh ṇ", "w W q Q R"},
		{"t th d dh n", "t T d D n"},
		{"p ph b bh m", "p P b B m"},
		{"y r l v", "y r l v"},
		{"ś ṣ s h ḻ", "S z s h L"},
		{"vāgarthāviva saṃpṛktau", "vAgarTAviva saMpfktO"},
	}
	for _, c := range cases {
		if got := translit.ToInternal(c.in); got != c.want {
			t.Errorf("ToInternal(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestRoundTrip: ToInternal(ToIAST(x)) == x for every character in the
// closed set of internal characters that have a unique IAST form.
func TestRoundTrip(t *testing.T) {
	for _, internal := range []string{"A", "I", "U", "f", "F", "x", "X", "E", "O", "M", "H", "N", "K", "G", "C", "J", "Y", "w", "W", "q", "Q", "T", "D", "P", "B", "R", "S", "z", "L"} {
		iast := translit.ToIAST(internal)
		back := translit.ToInternal(iast)
		if back != internal {
			t.Errorf("round trip failed for %q: ToIAST=%q, ToInternal(ToIAST)=%q", internal, iast, back)
		}
	}
}

func TestPassThroughUnmapped(t *testing.T) {
	if got := translit.ToInternal("hello, world 123"); got != "hello, world 123" {
		t.Errorf("expected unmapped input to pass through unchanged, got %q", got)
	}
}
