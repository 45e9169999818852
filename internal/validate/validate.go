// Package validate runs offline consistency checks against a built
// registry snapshot.
//
// The checks mirror what the per-service validation jobs verify before
// a registry is promoted: canonical names resolve to their own teams,
// the alias index is referentially intact in both directions, ids are
// coherent, and every service's coverage is quantified for operator
// review. No network access; this is pure snapshot inspection.
package validate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cbbstats/team-registry/internal/team"
)

// Issue is one failed check.
type Issue struct {
	Check  string `json:"check"`
	Detail string `json:"detail"`
}

// Coverage summarizes one service's slug resolution across the registry.
type Coverage struct {
	Mapped  int      `json:"mapped"`
	Missing int      `json:"missing"`
	Teams   []string `json:"missing_teams,omitempty"`
}

// Report is the outcome of validating one registry snapshot.
type Report struct {
	TeamCount  int                 `json:"team_count"`
	AliasCount int                 `json:"alias_count"`
	Issues     []Issue             `json:"issues,omitempty"`
	Coverage   map[string]Coverage `json:"coverage"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Check validates a registry snapshot and returns the full report.
func Check(reg *team.Registry) *Report {
	report := &Report{
		TeamCount:  len(reg.Teams),
		AliasCount: len(reg.AliasIndex),
		Coverage:   make(map[string]Coverage, len(team.AllServices)),
	}
	add := func(check, format string, args ...interface{}) {
		report.Issues = append(report.Issues, Issue{Check: check, Detail: fmt.Sprintf(format, args...)})
	}

	// Stable iteration order for reproducible reports.
	ids := make([]int, 0, len(reg.Teams))
	for key, t := range reg.Teams {
		if key != strconv.Itoa(t.ID) {
			add("id_key", "team keyed %q carries id %d", key, t.ID)
		}
		ids = append(ids, t.ID)
	}
	sort.Ints(ids)

	for _, id := range ids {
		t := reg.Team(id)
		if t == nil {
			continue
		}

		// Canonical name must resolve back to this team. A different
		// owner means an alias collision swallowed the canonical form.
		canonical := team.Fold(t.CanonicalName)
		owner, ok := reg.AliasIndex[canonical]
		switch {
		case !ok:
			add("canonical_resolves", "team %d: canonical alias %q not in index", id, canonical)
		case owner != id:
			add("canonical_resolves", "team %d: canonical alias %q owned by team %d", id, canonical, owner)
		}

		// Every team alias must appear in the index. Ownership by an
		// earlier team is legal (first-writer-wins), absence is not.
		for _, alias := range t.Aliases {
			if _, ok := reg.AliasIndex[alias]; !ok {
				add("alias_indexed", "team %d: alias %q missing from index", id, alias)
			}
		}
	}

	for alias, id := range reg.AliasIndex {
		if reg.Team(id) == nil {
			add("index_referential", "alias %q references unknown team id %d", alias, id)
		}
	}

	for _, service := range team.AllServices {
		var cov Coverage
		for _, id := range ids {
			t := reg.Team(id)
			if t == nil {
				continue
			}
			if _, ok := t.ServiceSlug(service); ok {
				cov.Mapped++
			} else {
				cov.Missing++
				cov.Teams = append(cov.Teams, t.CanonicalName)
			}
		}
		report.Coverage[service] = cov
	}

	return report
}
