package team

import (
	"regexp"
	"strings"
)

// stateQualifierRe matches a parenthesized 2-letter state code such as
// "(FL)" in "Miami (FL) Hurricanes", with any surrounding whitespace.
var stateQualifierRe = regexp.MustCompile(`\s*\(([A-Z]{2})\)\s*`)

// ExtractCanonicalName splits a display name into canonical name and
// mascot using the static mascot table.
//
//	ExtractCanonicalName("Michigan State Spartans")  → ("Michigan State", "Spartans")
//	ExtractCanonicalName("Miami (FL) Hurricanes")    → ("Miami (FL)", "Hurricanes")
//
// A 2-letter state qualifier is set aside before matching and re-appended
// after the mascot is stripped. When no table entry matches the trailing
// words the input is returned unchanged with an empty mascot: unknown
// mascots fail open, not closed.
func ExtractCanonicalName(displayName string) (canonical, mascot string) {
	name := strings.TrimSpace(displayName)

	qualifier := strings.TrimSpace(stateQualifierRe.FindString(name))
	stripped := strings.TrimSpace(stateQualifierRe.ReplaceAllString(name, " "))

	for _, m := range Mascots() {
		if !hasMascotSuffix(stripped, m) {
			continue
		}
		canonical = strings.TrimSpace(stripped[:len(stripped)-len(m)])
		if qualifier != "" {
			canonical = canonical + " " + qualifier
		}
		return canonical, stripped[len(stripped)-len(m):]
	}

	return name, ""
}

// StripStateQualifier removes a parenthesized state code from a name:
// "Miami (FL)" → "Miami".
func StripStateQualifier(name string) string {
	return strings.TrimSpace(stateQualifierRe.ReplaceAllString(name, " "))
}

// hasMascotSuffix reports whether name ends with the mascot as a whole
// trailing word, case-insensitively. The word-boundary requirement keeps
// "Seahawks" from matching the "Hawks" entry.
func hasMascotSuffix(name, mascot string) bool {
	if len(name) <= len(mascot) {
		return false
	}
	if !strings.EqualFold(name[len(name)-len(mascot):], mascot) {
		return false
	}
	return name[len(name)-len(mascot)-1] == ' '
}
