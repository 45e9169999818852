package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cbbstats/team-registry/internal/lookup"
	"github.com/cbbstats/team-registry/internal/registry"
	"github.com/cbbstats/team-registry/internal/validate"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
}

// writeJSON outputs any result as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// BuildOutput is the build command's result summary.
type BuildOutput struct {
	RegistryPath  string              `json:"registry_path"`
	TeamCount     int                 `json:"team_count"`
	AliasCount    int                 `json:"alias_count"`
	MappingCounts map[string]int      `json:"mapping_counts"`
	Collisions    []registry.Collision `json:"collisions,omitempty"`
	Unmapped      map[string][]string `json:"unmapped,omitempty"`
}

// writeBuildText outputs a build summary as human-readable text
func writeBuildText(w io.Writer, out *BuildOutput, verbose bool) error {
	fmt.Fprintf(w, "Registry written to %s\n", out.RegistryPath)
	fmt.Fprintf(w, "  teams:   %d\n", out.TeamCount)
	fmt.Fprintf(w, "  aliases: %d\n", out.AliasCount)

	services := sortedKeys(out.MappingCounts)
	for _, service := range services {
		fmt.Fprintf(w, "  %s: %d mapping entries, %d unmapped teams\n",
			service, out.MappingCounts[service], len(out.Unmapped[service]))
	}

	if len(out.Collisions) > 0 {
		fmt.Fprintf(w, "\n%d alias collisions (first owner kept):\n", len(out.Collisions))
		for _, c := range out.Collisions {
			fmt.Fprintf(w, "  %q: team %d kept, team %d skipped\n", c.Alias, c.OwnerID, c.TeamID)
		}
	}

	if verbose {
		for _, service := range services {
			teams := out.Unmapped[service]
			if len(teams) == 0 {
				continue
			}
			fmt.Fprintf(w, "\nUnmapped on %s:\n", service)
			for _, name := range teams {
				fmt.Fprintf(w, "  %s\n", name)
			}
		}
	}
	return nil
}

// LookupOutput is the lookup command's result.
type LookupOutput struct {
	Name          string            `json:"name"`
	TeamID        int               `json:"team_id"`
	CanonicalName string            `json:"canonical_name"`
	DisplayName   string            `json:"display_name"`
	Service       string            `json:"service,omitempty"`
	Slug          string            `json:"slug,omitempty"`
	Services      map[string]string `json:"services,omitempty"`
}

// writeLookupText outputs a lookup result as human-readable text
func writeLookupText(w io.Writer, out *LookupOutput) error {
	if out.Service != "" {
		fmt.Fprintf(w, "%s\n", out.Slug)
		return nil
	}

	fmt.Fprintf(w, "%s (id %d)\n", out.CanonicalName, out.TeamID)
	fmt.Fprintf(w, "  display: %s\n", out.DisplayName)
	for _, service := range sortedKeys(out.Services) {
		fmt.Fprintf(w, "  %s: %s\n", service, out.Services[service])
	}
	return nil
}

// writeTeamsText outputs a team listing as human-readable text
func writeTeamsText(w io.Writer, teams []lookup.Summary) error {
	for _, t := range teams {
		fmt.Fprintf(w, "%6d  %s\n", t.ID, t.CanonicalName)
	}
	fmt.Fprintf(w, "%d teams\n", len(teams))
	return nil
}

// writeReportText outputs a validation report as human-readable text
func writeReportText(w io.Writer, rep *validate.Report) error {
	fmt.Fprintf(w, "Checked %d teams, %d aliases\n", rep.TeamCount, rep.AliasCount)

	for _, service := range sortedKeys(rep.Coverage) {
		cov := rep.Coverage[service]
		fmt.Fprintf(w, "  %s: %d mapped, %d missing\n", service, cov.Mapped, cov.Missing)
	}

	if rep.OK() {
		fmt.Fprintln(w, "All checks passed.")
		return nil
	}

	fmt.Fprintf(w, "\n%d issues:\n", len(rep.Issues))
	for _, issue := range rep.Issues {
		fmt.Fprintf(w, "  [%s] %s\n", issue.Check, issue.Detail)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
