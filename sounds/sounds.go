// Package sounds classifies characters of the internal normalized Sanskrit
// alphabet (a one-char-per-sound Latin transliteration, SLP1-compatible).
package sounds

// vowels are the short, long, and vocalic-liquid vowels plus diphthongs.
const vowels = "aAiIuUfFxXeEoO"

// consonants covers velars, palatals, retroflexes, dentals, labials,
// semivowels, and sibilants.
const consonants = "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsLh"

// marks covers anusvara, visarga, and avagraha.
const marks = "MH'"

var alphabet = buildSet(vowels + consonants + marks)

func buildSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// IsSanskrit reports whether r belongs to the internal Sanskrit alphabet.
// It returns false for whitespace, punctuation, digits, and any character
// outside the normalized inventory.
func IsSanskrit(r rune) bool {
	_, ok := alphabet[r]
	return ok
}

// IsVowel reports whether r is one of the vowel sounds (including the
// diphthongs e/ai/o/au and the vocalic liquids).
func IsVowel(r rune) bool {
	for _, v := range vowels {
		if v == r {
			return true
		}
	}
	return false
}

// IsConsonant reports whether r is a consonant sound.
func IsConsonant(r rune) bool {
	for _, c := range consonants {
		if c == r {
			return true
		}
	}
	return false
}
