package team

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var tablesYAML []byte

// AbbrevPair is a full-word/abbreviation pair toggled by the alias
// generator in both directions.
type AbbrevPair struct {
	Full   string `yaml:"full"`
	Abbrev string `yaml:"abbrev"`
}

type staticTables struct {
	Mascots struct {
		MultiWord  []string `yaml:"multi_word"`
		SingleWord []string `yaml:"single_word"`
	} `yaml:"mascots"`
	Abbreviations []AbbrevPair `yaml:"abbreviations"`
}

var tables = mustLoadTables()

// mascotTable holds every known mascot in match order: multi-word
// entries before single-word entries, longest first within each group.
// The extractor depends on this ordering so "Golden Eagles" wins over
// "Eagles" and "RedHawks" over "Hawks".
var mascotTable = orderMascots(tables)

func mustLoadTables() staticTables {
	var t staticTables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		panic(fmt.Sprintf("team: parsing embedded tables: %v", err))
	}
	if len(t.Mascots.MultiWord) == 0 || len(t.Mascots.SingleWord) == 0 {
		panic("team: embedded mascot table is empty")
	}
	return t
}

func orderMascots(t staticTables) []string {
	multi := append([]string(nil), t.Mascots.MultiWord...)
	single := append([]string(nil), t.Mascots.SingleWord...)
	sort.SliceStable(multi, func(i, j int) bool { return len(multi[i]) > len(multi[j]) })
	sort.SliceStable(single, func(i, j int) bool { return len(single[i]) > len(single[j]) })
	return append(multi, single...)
}

// Mascots returns the full mascot table in match order. The returned
// slice is shared; callers must not modify it.
func Mascots() []string {
	return mascotTable
}

// Abbreviations returns the word abbreviation pairs used by the alias
// generator.
func Abbreviations() []AbbrevPair {
	return tables.Abbreviations
}
