package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbbstats/team-registry/internal/team"
)

// DefaultPath is the conventional registry location relative to the
// project root.
const DefaultPath = "config/team_registry.json"

// Save writes a registry snapshot to path as indented JSON, creating
// parent directories as needed.
func Save(reg *team.Registry, path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating registry directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

// Load reads a registry snapshot from path. Unlike mapping-file loading
// in the builder, every failure here is an error: missing file, bad
// JSON, or a snapshot whose alias index references unknown teams.
func Load(path string) (*team.Registry, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var reg team.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	if err := validate(&reg); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return &reg, nil
}

// validate rejects snapshots that would misbehave at lookup time.
func validate(reg *team.Registry) error {
	if len(reg.Teams) == 0 {
		return fmt.Errorf("no teams in snapshot")
	}
	if reg.AliasIndex == nil {
		return fmt.Errorf("missing alias index")
	}
	for alias, id := range reg.AliasIndex {
		if _, ok := reg.Teams[strconv.Itoa(id)]; !ok {
			return fmt.Errorf("alias %q references unknown team id %d", alias, id)
		}
	}
	return nil
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
