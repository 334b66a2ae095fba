package match

import (
	"strings"
	"unicode"
)

// asciiPunctuation is the character set dropped by Normalize.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize returns a canonical representation of free-form text for
// comparison.
//
// The normalization rules are intentionally simple so that the same input
// always reduces to the same form regardless of casing, punctuation or
// spacing:
//   - Drop all ASCII punctuation characters
//   - Lower-case everything
//   - Collapse every whitespace run to a single space and trim the ends
//
// Normalizing an already normalized string is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(asciiPunctuation, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeIdentifier strips all whitespace from an identifier so that
// differently grouped forms of the same identifier compare equal, e.g.
// "1234 5678 9012" and "123456789012".
func NormalizeIdentifier(id string) string {
	return stripWhitespace(id)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
