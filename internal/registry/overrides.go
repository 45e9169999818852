package registry

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/aliases.yaml
var aliasesYAML []byte

// DefaultManualAliases returns the embedded manual-alias override table,
// keyed by master team id. The returned map is a fresh copy safe to
// merge into.
func DefaultManualAliases() map[int][]string {
	var table map[int][]string
	if err := yaml.Unmarshal(aliasesYAML, &table); err != nil {
		panic(fmt.Sprintf("registry: parsing embedded alias overrides: %v", err))
	}
	return table
}

// LoadManualAliases reads an operator-maintained override file and
// unions it with the embedded defaults. File entries add to, never
// replace, the defaults for the same team id.
func LoadManualAliases(path string) (map[int][]string, error) {
	table := DefaultManualAliases()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias overrides: %w", err)
	}
	var extra map[int][]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parsing alias overrides %s: %w", path, err)
	}

	for id, aliases := range extra {
		table[id] = append(table[id], aliases...)
	}
	return table, nil
}
