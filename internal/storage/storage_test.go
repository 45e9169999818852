package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbbstats/team-registry/internal/team"
)

func sampleRegistry() *team.Registry {
	return &team.Registry{
		Version:     "1.0.0",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TeamCount:   1,
		AliasCount:  2,
		Teams: map[string]*team.Team{
			"1": {
				ID:            1,
				CanonicalName: "Michigan State",
				DisplayName:   "Michigan State Spartans",
				Mascot:        "Spartans",
				Aliases:       []string{"michigan st", "michigan state"},
				Services:      map[string]string{team.ServiceBballnet: "michigan-state"},
			},
		},
		AliasIndex: map[string]int{
			"michigan st":    1,
			"michigan state": 1,
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "registry.json")

	if err := Save(sampleRegistry(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reg.Version != "1.0.0" || reg.TeamCount != 1 {
		t.Errorf("round trip lost header fields: %+v", reg)
	}
	tm := reg.Team(1)
	if tm == nil {
		t.Fatal("team 1 missing after round trip")
	}
	if tm.CanonicalName != "Michigan State" {
		t.Errorf("canonical = %q, want Michigan State", tm.CanonicalName)
	}
	if slug, ok := tm.ServiceSlug(team.ServiceBballnet); !ok || slug != "michigan-state" {
		t.Errorf("bballnet slug = %q, %v", slug, ok)
	}
	if reg.AliasIndex["michigan st"] != 1 {
		t.Error("alias index lost after round trip")
	}
	if !reg.GeneratedAt.Equal(sampleRegistry().GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", reg.GeneratedAt, sampleRegistry().GeneratedAt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing registry")
	}
}

func TestLoadCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := os.WriteFile(path, []byte("{not valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for corrupt JSON")
	}
}

func TestLoadRejectsBadSnapshots(t *testing.T) {
	t.Run("empty teams", func(t *testing.T) {
		reg := sampleRegistry()
		reg.Teams = map[string]*team.Team{}
		path := filepath.Join(t.TempDir(), "registry.json")
		if err := Save(reg, path); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected an error for a snapshot with no teams")
		}
	})

	t.Run("dangling alias", func(t *testing.T) {
		reg := sampleRegistry()
		reg.AliasIndex["ghost team"] = 99
		path := filepath.Join(t.TempDir(), "registry.json")
		if err := Save(reg, path); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected an error for an alias referencing an unknown team")
		}
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got, err := expandHome("~/registry.json")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "registry.json") {
		t.Errorf("expandHome = %q", got)
	}

	got, err = expandHome("/absolute/registry.json")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/absolute/registry.json" {
		t.Errorf("absolute path changed: %q", got)
	}
}
