// Package matcher finds the best slug for a team name in one external
// source's name→slug table.
//
// Matching runs in priority order: exact key hit, normalized equality,
// substring containment, word overlap. The containment and overlap
// stages are scored heuristics; the best candidate wins only if its
// score clears the caller's acceptance threshold. This is the one place
// in the resolution engine where genuine ambiguity exists.
package matcher

import (
	"sort"
	"strings"

	"github.com/cbbstats/team-registry/internal/team"
)

// Scoring constants. These are hand-tuned values carried over from the
// production matcher; they are current accepted behavior, not
// verified-optimal. Changing them can silently alter which slug an
// ambiguous name resolves to.
const (
	// Containment: a normalized query found inside a key scores higher
	// than a key found inside the query, and both favor near-equal
	// lengths (a short query swallowed by a much longer key scores at
	// the bottom of its band).
	ScoreQueryInKeyBase = 100
	ScoreKeyInQueryBase = 80
	ContainmentSpan     = 50

	// Word overlap: when every word of the shorter name appears in the
	// longer one the match is near-certain; a partial overlap is scaled
	// by the share of words in common.
	ScoreWordSubsetBase  = 90
	ScoreWordSubsetEqual = 95
	WordOverlapSpan      = 70

	// Acceptance thresholds. Strict is used for canonical-name passes,
	// lenient for display-name fallback passes.
	ThresholdStrict  = 80
	ThresholdLenient = 70
)

type entry struct {
	norm string
	slug string
}

// Matcher matches team names against one external source's name→slug
// table. It is read-only after construction and safe for concurrent use.
type Matcher struct {
	exact   map[string]string // original key → slug
	norm    map[string]string // normalized key → slug
	entries []entry           // normalized keys in sorted order
}

// New builds a Matcher from a source's name→slug map. Keys are
// normalized and sorted up front so that score ties always break the
// same way regardless of Go's randomized map iteration.
func New(mapping map[string]string) *Matcher {
	m := &Matcher{
		exact: make(map[string]string, len(mapping)),
		norm:  make(map[string]string, len(mapping)),
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		m.exact[k] = mapping[k]
		n := team.Normalize(k)
		if n == "" {
			continue
		}
		if _, ok := m.norm[n]; !ok {
			m.norm[n] = mapping[k]
			m.entries = append(m.entries, entry{norm: n, slug: mapping[k]})
		}
	}
	return m
}

// Len returns the number of names in the source table.
func (m *Matcher) Len() int {
	return len(m.exact)
}

// Find returns the best slug for name at the strict threshold. The
// variants (typically the team's alias set) are tried in the exact and
// normalized stages before any fuzzy scoring of the primary name.
func (m *Matcher) Find(name string, variants ...string) (string, bool) {
	return m.FindWithThreshold(ThresholdStrict, name, variants...)
}

// FindWithThreshold is Find with an explicit acceptance threshold for
// the scored stages.
func (m *Matcher) FindWithThreshold(threshold float64, name string, variants ...string) (string, bool) {
	// Stage 1: exact key hit, name first then variants in order.
	if slug, ok := m.exact[name]; ok {
		return slug, true
	}
	for _, v := range variants {
		if slug, ok := m.exact[v]; ok {
			return slug, true
		}
	}

	// Stage 2: normalized equality.
	if slug, ok := m.norm[team.Normalize(name)]; ok {
		return slug, true
	}
	for _, v := range variants {
		if slug, ok := m.norm[team.Normalize(v)]; ok {
			return slug, true
		}
	}

	// Stages 3–4: containment and word-overlap scoring of the primary
	// name. Strictly-greater comparison keeps the first-encountered
	// candidate on ties.
	query := team.Normalize(name)
	if query == "" {
		return "", false
	}

	bestScore := 0.0
	bestSlug := ""
	for _, e := range m.entries {
		if s := score(query, e.norm); s > bestScore {
			bestScore = s
			bestSlug = e.slug
		}
	}
	if bestScore >= threshold {
		return bestSlug, true
	}
	return "", false
}

// score rates how well a normalized query matches a normalized key.
func score(query, key string) float64 {
	if strings.Contains(key, query) {
		ratio := float64(len(query)) / float64(len(key))
		return ScoreQueryInKeyBase + ratio*ContainmentSpan
	}
	if strings.Contains(query, key) {
		ratio := float64(len(key)) / float64(len(query))
		return ScoreKeyInQueryBase + ratio*ContainmentSpan
	}

	queryWords := wordSet(query)
	keyWords := wordSet(key)
	overlap := 0
	for w := range queryWords {
		if _, ok := keyWords[w]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return 0
	}

	shorter, longer := len(queryWords), len(keyWords)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if overlap == shorter {
		if len(queryWords) == len(keyWords) {
			return ScoreWordSubsetEqual
		}
		return ScoreWordSubsetBase
	}
	return float64(overlap) / float64(longer) * WordOverlapSpan
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
