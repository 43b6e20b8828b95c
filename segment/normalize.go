package segment

import "strings"

// normalize canonicalizes whitespace: runs of whitespace collapse to a
// single space and leading/trailing whitespace is trimmed. The internal
// alphabet is case-significant (capital letters denote distinct sounds),
// so letter case is preserved as-is.
func normalize(rawText string) string {
	return strings.Join(strings.Fields(rawText), " ")
}
