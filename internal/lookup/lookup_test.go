package lookup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cbbstats/team-registry/internal/storage"
	"github.com/cbbstats/team-registry/internal/team"
)

func testRegistry() *team.Registry {
	teams := map[string]*team.Team{
		"1": {
			ID:            1,
			CanonicalName: "Michigan State",
			DisplayName:   "Michigan State Spartans",
			Mascot:        "Spartans",
			Aliases:       []string{"michigan st", "michigan st.", "michigan state", "michigan state spartans"},
			Services: map[string]string{
				team.ServiceBballnet: "michigan-state",
				team.ServiceKenpom:   "Michigan State",
			},
		},
		"2": {
			ID:            2,
			CanonicalName: "Miami (FL)",
			DisplayName:   "Miami (FL) Hurricanes",
			Mascot:        "Hurricanes",
			Aliases:       []string{"miami", "miami (fl)", "miami (fl) hurricanes", "miami fl", "miami(fl)"},
			Services: map[string]string{
				team.ServiceBballnet: "miami-fl",
			},
		},
		// Deliberately thin alias sets so the st/state probe has to fire.
		"3": {
			ID:            3,
			CanonicalName: "Appalachian State",
			DisplayName:   "Appalachian State Mountaineers",
			Mascot:        "Mountaineers",
			Aliases:       []string{"appalachian state"},
			Services:      map[string]string{},
		},
		"4": {
			ID:            4,
			CanonicalName: "Boise State",
			DisplayName:   "Boise State Broncos",
			Mascot:        "Broncos",
			Aliases:       []string{"boise st"},
			Services:      map[string]string{},
		},
	}

	index := make(map[string]int)
	for _, t := range teams {
		for _, a := range t.Aliases {
			index[a] = t.ID
		}
	}

	return &team.Registry{
		Version:     "1.0.0",
		GeneratedAt: time.Now().UTC(),
		TeamCount:   len(teams),
		AliasCount:  len(index),
		Teams:       teams,
		AliasIndex:  index,
	}
}

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := New(testRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestTeamID(t *testing.T) {
	s := newService(t)

	tests := []struct {
		name   string
		wantID int
		wantOK bool
	}{
		{"Michigan State", 1, true},
		{"MICHIGAN STATE", 1, true},
		{"  Michigan   State ", 1, true},
		{"Michigan St.", 1, true},
		{"michigan st", 1, true},
		{"Miami (FL)", 2, true},
		{"Miami(FL)", 2, true},
		{"MIAMI FL", 2, true},
		// Folded and period-free probes miss; the st -> state swap hits.
		{"Appalachian St", 3, true},
		// The reverse swap: state -> st.
		{"Boise State", 4, true},
		{"Nonexistent University", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := s.TeamID(tt.name)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("TeamID(%q) = %d, %v; want %d, %v", tt.name, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

// Every alias in the index must resolve back to its owning team. This
// holds by construction for a freshly built registry and must keep
// holding through persistence and lookup.
func TestEveryAliasResolves(t *testing.T) {
	s := newService(t)
	reg := testRegistry()

	for alias, wantID := range reg.AliasIndex {
		id, ok := s.TeamID(alias)
		if !ok || id != wantID {
			t.Errorf("TeamID(%q) = %d, %v; want %d", alias, id, ok, wantID)
		}
	}
}

func TestLookup(t *testing.T) {
	s := newService(t)

	slug, ok := s.Lookup("Michigan St.", team.ServiceBballnet)
	if !ok || slug != "michigan-state" {
		t.Errorf("Lookup = %q, %v; want michigan-state", slug, ok)
	}

	// Known team, unresolved service.
	if _, ok := s.Lookup("Miami (FL)", team.ServiceKenpom); ok {
		t.Error("unresolved service should report false")
	}

	// Unknown team never errors, just reports false.
	if _, ok := s.Lookup("Nonexistent University", team.ServiceBballnet); ok {
		t.Error("unknown team should report false")
	}
}

func TestNameAccessors(t *testing.T) {
	s := newService(t)

	if got, ok := s.CanonicalName("miami fl"); !ok || got != "Miami (FL)" {
		t.Errorf("CanonicalName = %q, %v", got, ok)
	}
	if got, ok := s.DisplayName("michigan st"); !ok || got != "Michigan State Spartans" {
		t.Errorf("DisplayName = %q, %v", got, ok)
	}
	if !s.TeamExists("miami") {
		t.Error("TeamExists(miami) = false")
	}
	if s.TeamExists("not a team") {
		t.Error("TeamExists(not a team) = true")
	}
}

func TestTeamsOrdered(t *testing.T) {
	s := newService(t)

	teams := s.Teams()
	if len(teams) != 4 {
		t.Fatalf("Teams() returned %d entries, want 4", len(teams))
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1].ID >= teams[i].ID {
			t.Fatalf("Teams() not ordered by id: %+v", teams)
		}
	}
}

func TestMissingService(t *testing.T) {
	s := newService(t)

	missing := s.MissingService(team.ServiceBballnet)
	if len(missing) != 2 || missing[0].ID != 3 || missing[1].ID != 4 {
		t.Errorf("MissingService = %+v, want teams 3 and 4", missing)
	}

	if got := s.MissingService(team.ServiceKenpom); len(got) != 3 {
		t.Errorf("kenpom missing = %d teams, want 3", len(got))
	}
}

func TestNewRejectsEmptyRegistry(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should fail")
	}
	if _, err := New(&team.Registry{}); err == nil {
		t.Error("New on an empty registry should fail")
	}

	reg := testRegistry()
	reg.AliasIndex = map[string]int{}
	if _, err := New(reg); err == nil {
		t.Error("New without an alias index should fail")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := storage.Save(testRegistry(), path); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if id, ok := s.TeamID("Michigan State"); !ok || id != 1 {
		t.Errorf("TeamID after Open = %d, %v", id, ok)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Open on a missing file should fail")
	}
}
