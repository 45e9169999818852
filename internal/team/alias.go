package team

import (
	"regexp"
	"sort"
	"strings"
)

// qualifierToggleRe captures a state qualifier with any leading
// whitespace, used to produce the spaced / tight / parens-free variants.
var qualifierToggleRe = regexp.MustCompile(`\s*\(([A-Z]{2})\)`)

// Fold is the light normalization applied to every generated alias:
// diacritics stripped, lowercased, curly apostrophes straightened,
// whitespace collapsed. Unlike Normalize it keeps periods, so
// "arizona st." and "arizona st" remain distinct aliases.
func Fold(name string) string {
	if name == "" {
		return ""
	}
	s := stripDiacritics(name)
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "’", "'")
	return collapseWhitespace(s)
}

// GenerateAliases expands a canonical/display name pair into the sorted
// set of folded aliases a human or external site might use for the team.
// The expansion is pure and deterministic: identical inputs always yield
// an identical set, so re-running the registry builder produces a stable
// registry modulo new external data.
func GenerateAliases(canonical, display string) []string {
	set := make(map[string]struct{})
	addAll := func(name string) {
		if name == "" {
			return
		}
		for _, v := range variations(name) {
			set[Fold(v)] = struct{}{}
		}
	}

	addAll(canonical)
	addAll(display)
	if bare := StripStateQualifier(canonical); bare != canonical {
		addAll(bare)
	}
	if bare := StripStateQualifier(display); bare != display {
		addAll(bare)
	}

	// Period-free twin for every alias collected so far.
	for a := range set {
		if strings.Contains(a, ".") {
			set[strings.ReplaceAll(a, ".", "")] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// variations returns spelling variants of a single name with original
// casing preserved. The first element is always the name itself.
func variations(name string) []string {
	out := []string{name}
	seen := map[string]struct{}{name: {}}
	add := func(v string) {
		v = collapseWhitespace(v)
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	// State <-> St. <-> St. The reverse direction skips a leading "St."
	// so "St. John's" does not become "State John's".
	if containsToken(name, "State") {
		add(replaceToken(name, "State", "St.", false))
		add(replaceToken(name, "State", "St", false))
	}
	if containsToken(name, "St.") {
		add(replaceToken(name, "St.", "State", true))
		add(replaceToken(name, "St.", "St", true))
	}
	if containsToken(name, "St") {
		add(replaceToken(name, "St", "State", true))
		add(replaceToken(name, "St", "St.", true))
	}

	// Trailing "University" dropped or shortened.
	if containsToken(name, "University") {
		add(replaceToken(name, "University", "U.", false))
		add(replaceToken(name, "University", "", false))
	}

	// Common state-word abbreviations, both directions.
	for _, p := range Abbreviations() {
		bare := strings.TrimSuffix(p.Abbrev, ".")
		if containsToken(name, p.Full) {
			add(replaceToken(name, p.Full, p.Abbrev, false))
			add(replaceToken(name, p.Full, bare, false))
		}
		if containsToken(name, p.Abbrev) {
			add(replaceToken(name, p.Abbrev, p.Full, false))
		}
		if bare != p.Full && containsToken(name, bare) {
			add(replaceToken(name, bare, p.Full, false))
		}
	}

	// State qualifier spacing: "Miami (FL)" <-> "Miami(FL)", plus the
	// parens-free "Miami FL".
	if qualifierToggleRe.MatchString(name) {
		add(qualifierToggleRe.ReplaceAllString(name, " ($1)"))
		add(qualifierToggleRe.ReplaceAllString(name, "($1)"))
		add(qualifierToggleRe.ReplaceAllString(name, " $1"))
	}

	return out
}

// containsToken reports whether name contains word as a whole
// space-separated token.
func containsToken(name, word string) bool {
	for _, f := range strings.Fields(name) {
		if f == word {
			return true
		}
	}
	return false
}

// replaceToken replaces whole tokens equal to old with new. When
// skipFirst is set the leading token is left alone, which keeps saint
// abbreviations ("St. John's") out of the State expansion.
func replaceToken(name, old, new string, skipFirst bool) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		if f != old {
			continue
		}
		if skipFirst && i == 0 {
			continue
		}
		fields[i] = new
	}
	return strings.Join(fields, " ")
}
