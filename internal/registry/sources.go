package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// MasterTeam is one entry of the master team list: the authoritative
// numeric id plus the display name with mascot.
type MasterTeam struct {
	ID          int
	DisplayName string
}

// LoadMaster reads the master team list, a JSON object mapping id
// strings to display names, and returns it sorted by ascending id. The
// master list is the one input the builder cannot work without.
func LoadMaster(path string) ([]MasterTeam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading master team list: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing master team list: %w", err)
	}

	teams := make([]MasterTeam, 0, len(raw))
	for idStr, display := range raw {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("master team list: invalid id %q: %w", idStr, err)
		}
		teams = append(teams, MasterTeam{ID: id, DisplayName: display})
	}

	// JSON objects carry no order; ascending id is the build order, so
	// alias collisions always resolve to the lower id.
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

// LoadMapping reads one external service's name→slug map. Both the bare
// object form and the scraper wrapper form ({"team_slug_mapping": {...}})
// are accepted.
func LoadMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}
	mapping, err := parseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("parsing mapping file %s: %w", path, err)
	}
	return mapping, nil
}

func parseMapping(data []byte) (map[string]string, error) {
	var wrapper struct {
		TeamSlugMapping map[string]string `json:"team_slug_mapping"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && len(wrapper.TeamSlugMapping) > 0 {
		return wrapper.TeamSlugMapping, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
