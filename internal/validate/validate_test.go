package validate

import (
	"strings"
	"testing"

	"github.com/cbbstats/team-registry/internal/team"
)

func goodRegistry() *team.Registry {
	return &team.Registry{
		Version:    "1.0.0",
		TeamCount:  2,
		AliasCount: 4,
		Teams: map[string]*team.Team{
			"1": {
				ID:            1,
				CanonicalName: "Michigan State",
				DisplayName:   "Michigan State Spartans",
				Aliases:       []string{"michigan st", "michigan state"},
				Services: map[string]string{
					team.ServiceBballnet: "michigan-state",
					team.ServiceKenpom:   "Michigan State",
				},
			},
			"2": {
				ID:            2,
				CanonicalName: "Duke",
				DisplayName:   "Duke Blue Devils",
				Aliases:       []string{"duke", "duke blue devils"},
				Services: map[string]string{
					team.ServiceKenpom: "Duke",
				},
			},
		},
		AliasIndex: map[string]int{
			"michigan st":      1,
			"michigan state":   1,
			"duke":             2,
			"duke blue devils": 2,
		},
	}
}

func issueChecks(r *Report) []string {
	var out []string
	for _, i := range r.Issues {
		out = append(out, i.Check)
	}
	return out
}

func TestCheckCleanRegistry(t *testing.T) {
	report := Check(goodRegistry())

	if !report.OK() {
		t.Fatalf("clean registry reported issues: %+v", report.Issues)
	}
	if report.TeamCount != 2 || report.AliasCount != 4 {
		t.Errorf("counts = %d teams, %d aliases", report.TeamCount, report.AliasCount)
	}
}

func TestCheckIDKeyMismatch(t *testing.T) {
	reg := goodRegistry()
	reg.Teams["7"] = reg.Teams["2"]
	delete(reg.Teams, "2")

	report := Check(reg)
	if report.OK() {
		t.Fatal("mismatched id key not flagged")
	}
	found := false
	for _, c := range issueChecks(report) {
		if c == "id_key" {
			found = true
		}
	}
	if !found {
		t.Errorf("issues = %v, want id_key", issueChecks(report))
	}
}

func TestCheckCanonicalMustResolve(t *testing.T) {
	t.Run("missing from index", func(t *testing.T) {
		reg := goodRegistry()
		delete(reg.AliasIndex, "duke")

		report := Check(reg)
		found := false
		for _, i := range report.Issues {
			if i.Check == "canonical_resolves" && strings.Contains(i.Detail, "duke") {
				found = true
			}
		}
		if !found {
			t.Errorf("unresolvable canonical name not flagged: %+v", report.Issues)
		}
	})

	t.Run("owned by another team", func(t *testing.T) {
		reg := goodRegistry()
		reg.AliasIndex["duke"] = 1

		report := Check(reg)
		found := false
		for _, i := range report.Issues {
			if i.Check == "canonical_resolves" && strings.Contains(i.Detail, "owned by team 1") {
				found = true
			}
		}
		if !found {
			t.Errorf("stolen canonical alias not flagged: %+v", report.Issues)
		}
	})
}

func TestCheckAliasIndexed(t *testing.T) {
	reg := goodRegistry()
	reg.Teams["1"].Aliases = append(reg.Teams["1"].Aliases, "sparty")

	report := Check(reg)
	found := false
	for _, i := range report.Issues {
		if i.Check == "alias_indexed" && strings.Contains(i.Detail, "sparty") {
			found = true
		}
	}
	if !found {
		t.Errorf("unindexed team alias not flagged: %+v", report.Issues)
	}
}

func TestCheckIndexReferential(t *testing.T) {
	reg := goodRegistry()
	reg.AliasIndex["ghost"] = 42

	report := Check(reg)
	found := false
	for _, i := range report.Issues {
		if i.Check == "index_referential" && strings.Contains(i.Detail, "42") {
			found = true
		}
	}
	if !found {
		t.Errorf("dangling index entry not flagged: %+v", report.Issues)
	}
}

func TestCheckCoverage(t *testing.T) {
	report := Check(goodRegistry())

	bb := report.Coverage[team.ServiceBballnet]
	if bb.Mapped != 1 || bb.Missing != 1 {
		t.Errorf("bballnet coverage = %+v, want 1 mapped, 1 missing", bb)
	}
	if len(bb.Teams) != 1 || bb.Teams[0] != "Duke" {
		t.Errorf("bballnet missing teams = %v, want [Duke]", bb.Teams)
	}

	kp := report.Coverage[team.ServiceKenpom]
	if kp.Mapped != 2 || kp.Missing != 0 {
		t.Errorf("kenpom coverage = %+v, want full", kp)
	}

	wiki := report.Coverage[team.ServiceWikipedia]
	if wiki.Mapped != 0 || wiki.Missing != 2 {
		t.Errorf("wikipedia coverage = %+v, want none mapped", wiki)
	}
}
