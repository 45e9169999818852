package team

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts a team name to the form used for fuzzy matching:
// diacritics stripped, lowercased, curly apostrophes straightened,
// periods removed, whitespace collapsed. It is Fold plus period
// removal, so "Ark. St." and "ark st" normalize identically.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	return collapseWhitespace(strings.ReplaceAll(Fold(name), ".", ""))
}

func stripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing (combining accents)
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
