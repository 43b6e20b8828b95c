// Package translit converts between IAST (the common academic romanization
// of Sanskrit) and the internal normalized alphabet that sounds, sandhi,
// and segment operate over. Conversion is a greedy longest-match-first
// table lookup in both directions.
package translit

import "strings"

// iastToInternal maps IAST glyphs (one or two characters) to their single
// character in the internal alphabet. The longest IAST glyph is two
// characters, so callers must try length 2 before length 1 (greedy match).
var iastToInternal = map[string]string{
	"ā": "A", "ī": "I", "ū": "U",
	"ṛ": "f", "ṝ": "F", "ḷ": "x", "ḹ": "X",
	"ai": "E", "au": "O",
	"ṃ": "M", "ḥ": "H", "ṅ": "N",
	"kh": "K", "gh": "G",
	"ch": "C", "jh": "J", "ñ": "Y",
	"ṭ": "w", "ṭh": "W", "ḍ": "q", "ḍh": "Q",
	"th": "T", "dh": "D", "ph": "P", "bh": "B",
	"ṇ": "R", "ś": "S", "ṣ": "z", "ḻ": "L",
}

// internalToIAST is the inverse of iastToInternal, built once at init time.
// iastToInternal is injective for this alphabet, so the round trip holds on
// the closed set of internal characters that have a unique IAST form.
var internalToIAST map[string]string

func init() {
	internalToIAST = make(map[string]string, len(iastToInternal))
	for iast, internal := range iastToInternal {
		if _, exists := internalToIAST[internal]; !exists {
			internalToIAST[internal] = iast
		}
	}
}

// ToInternal converts an IAST string into the internal alphabet. Characters
// with no mapping (including plain ASCII letters like k, t, m, which are
// already identical in both schemes, and whitespace/punctuation) pass
// through unchanged.
func ToInternal(input string) string {
	return convert(input, iastToInternal)
}

// ToIAST converts a string in the internal alphabet back into IAST.
// Characters with no mapping pass through unchanged.
func ToIAST(input string) string {
	return convert(input, internalToIAST)
}

// convert applies table greedily: for each position, it tries a
// two-character lookup before a one-character lookup, and falls back to
// copying the rune unchanged if neither matches.
func convert(input string, table map[string]string) string {
	chars := []rune(input)
	var out strings.Builder
	out.Grow(len(input))

	for i := 0; i < len(chars); {
		matched := false
		for _, glyphLen := range [2]int{2, 1} {
			end := i + glyphLen
			if end > len(chars) {
				continue
			}
			candidate := string(chars[i:end])
			if mapped, ok := table[candidate]; ok {
				out.WriteString(mapped)
				i = end
				matched = true
				break
			}
		}
		if !matched {
			out.WriteRune(chars[i])
			i++
		}
	}
	return out.String()
}
