// Package sandhi enumerates the ways an input prefix can be undone into a
// (first word, remainder) pair by reversing the phonetic fusion rules that
// operate at Sanskrit word boundaries.
package sandhi

import (
	"strings"

	"github.com/steosofficial/sanskritmorphy/sounds"
)

// permittedFinals are the sounds a recovered word is allowed to end with.
// Sanskrit inflected word-forms end in a vowel, in anusvara/visarga, or in
// one of a small set of stop/nasal consonants; any other final sound
// means the candidate split is not a real word boundary.
const permittedFinals = "aAiIuUfFxXeEoOMHkwqtpNYRnm"

// Split is one way of decomposing a text into a first word and a remaining
// suffix.
type Split struct {
	First        string
	Second       string
	IsEndOfChunk bool
	original     string
	ruleKind     string
}

// IsValid reports whether the first part is phonetically well-formed as a
// terminal Sanskrit word-form.
func (s Split) IsValid() bool {
	if s.First == "" {
		return false
	}
	runes := []rune(s.First)
	last := runes[len(runes)-1]
	return strings.ContainsRune(permittedFinals, last)
}

// IsRecursive reports whether this split makes no progress: the remainder
// is identical to the text the splitter was asked to decompose. Such
// splits must be rejected by callers to guarantee search termination.
func (s Split) IsRecursive() bool {
	return s.Second == s.original
}

// Splitter enumerates sandhi splits using a loaded rule table.
type Splitter struct {
	rules RuleTable
}

// NewSplitter builds a Splitter from an already-loaded rule table.
func NewSplitter(rules RuleTable) *Splitter {
	return &Splitter{rules: rules}
}

// SplitAll enumerates every way to decompose s into (first, second) pairs:
// one split at the first whitespace chunk boundary (if any), one split per
// rule and occurrence of its fused form in s, and the degenerate split
// (s, "").
func (sp *Splitter) SplitAll(s string) []Split {
	var out []Split

	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		out = append(out, Split{
			First:        s[:idx],
			Second:       s[idx+1:],
			IsEndOfChunk: true,
			original:     s,
		})
	}

	for fused, candidates := range sp.rules {
		for start := 0; start+len(fused) <= len(s); start++ {
			if s[start:start+len(fused)] != fused {
				continue
			}
			for _, rule := range candidates {
				first := s[:start] + rule.Left
				if first == "" {
					continue
				}
				second := rule.Right + s[start+len(fused):]
				out = append(out, Split{
					First:        first,
					Second:       second,
					IsEndOfChunk: rule.Kind == "chunk",
					original:     s,
					ruleKind:     rule.Kind,
				})
			}
		}
	}

	out = append(out, Split{First: s, Second: "", original: s})

	return out
}

// IsSanskritPrefix reports whether text begins with a character from the
// Sanskrit phonetic inventory, which tells a caller whether to treat a
// prefix as junk.
func IsSanskritPrefix(text string) bool {
	if text == "" {
		return false
	}
	r := []rune(text)[0]
	return sounds.IsSanskrit(r)
}
