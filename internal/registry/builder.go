// Package registry builds the consolidated team registry from the
// master team list, the per-service slug maps, and the manual alias
// overrides.
//
// The build is a single-threaded, run-to-completion batch job. A missing
// or malformed mapping file is never fatal: that service's slugs are
// simply unresolved for every team and reported in the result. Only a
// missing master list aborts the build.
package registry

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cbbstats/team-registry/internal/logger"
	"github.com/cbbstats/team-registry/internal/matcher"
	"github.com/cbbstats/team-registry/internal/team"
)

// RegistryVersion is stamped into every built registry snapshot.
const RegistryVersion = "1.0.0"

// identityServices resolve to the canonical name itself when no mapping
// entry matches; barttorvik and kenpom address teams by display-style
// names rather than slugs.
var identityServices = map[string]bool{
	team.ServiceBarttorvik: true,
	team.ServiceKenpom:     true,
}

// Sources names the builder's inputs. MappingPaths is keyed by service
// name; services without a path get an empty map.
type Sources struct {
	MasterPath   string
	MappingPaths map[string]string
	AliasesPath  string // optional operator override file
}

// Collision records an alias claimed by two different teams. The earlier
// team (OwnerID) keeps the alias; the build never overwrites.
type Collision struct {
	Alias   string `json:"alias"`
	OwnerID int    `json:"owner_id"`
	TeamID  int    `json:"team_id"`
}

// Result is the outcome of one build: the registry snapshot plus the
// operator-review material (collisions and per-service unmapped teams).
type Result struct {
	Registry      *team.Registry      `json:"registry"`
	Collisions    []Collision         `json:"collisions"`
	Unmapped      map[string][]string `json:"unmapped"`
	MappingCounts map[string]int      `json:"mapping_counts"`
}

// Build constructs a registry from the given sources. It returns an
// error only when the master list cannot be read; every other input
// failure degrades to partial data.
func Build(src Sources) (*Result, error) {
	start := time.Now()

	master, err := LoadMaster(src.MasterPath)
	if err != nil {
		return nil, fmt.Errorf("loading master list: %w", err)
	}

	manual, err := LoadManualAliases(src.AliasesPath)
	if err != nil {
		return nil, fmt.Errorf("loading alias overrides: %w", err)
	}

	matchers := make(map[string]*matcher.Matcher, len(team.AllServices))
	counts := make(map[string]int, len(team.AllServices))
	for _, service := range team.AllServices {
		mapping := map[string]string{}
		if path, ok := src.MappingPaths[service]; ok && path != "" {
			loaded, err := LoadMapping(path)
			if err != nil {
				logger.Warn("Mapping file unavailable, service will be unresolved", logger.Fields{
					"service": service,
					"error":   err.Error(),
				})
			} else {
				mapping = loaded
			}
		}
		matchers[service] = matcher.New(mapping)
		counts[service] = len(mapping)
	}

	reg := &team.Registry{
		Version:     RegistryVersion,
		GeneratedAt: time.Now().UTC(),
		Teams:       make(map[string]*team.Team, len(master)),
		AliasIndex:  make(map[string]int),
	}
	var collisions []Collision
	unmapped := make(map[string][]string)

	for _, mt := range master {
		t := buildTeam(mt, matchers, manual[mt.ID])
		reg.Teams[strconv.Itoa(t.ID)] = t

		for _, service := range team.AllServices {
			if _, ok := t.Services[service]; !ok {
				unmapped[service] = append(unmapped[service], t.CanonicalName)
			}
		}

		// Master order is ascending id, so the first writer of a
		// contested alias is always the lower id.
		for _, alias := range t.Aliases {
			owner, exists := reg.AliasIndex[alias]
			if !exists {
				reg.AliasIndex[alias] = t.ID
				continue
			}
			if owner != t.ID {
				collisions = append(collisions, Collision{Alias: alias, OwnerID: owner, TeamID: t.ID})
				logger.Warn("Alias collision, keeping first owner", logger.Fields{
					"alias":    alias,
					"owner_id": owner,
					"team_id":  t.ID,
				})
				logger.IncrCounter("build.collisions")
			}
		}
	}

	reg.TeamCount = len(reg.Teams)
	reg.AliasCount = len(reg.AliasIndex)

	logger.RecordTiming("build", time.Since(start))
	logger.Info("Registry built", logger.Fields{
		"teams":      reg.TeamCount,
		"aliases":    reg.AliasCount,
		"collisions": len(collisions),
	})
	for _, service := range team.AllServices {
		if n := len(unmapped[service]); n > 0 {
			logger.Info("Service has unmapped teams", logger.Fields{
				"service":  service,
				"unmapped": n,
			})
		}
	}

	return &Result{
		Registry:      reg,
		Collisions:    collisions,
		Unmapped:      unmapped,
		MappingCounts: counts,
	}, nil
}

// buildTeam assembles one team record: canonical extraction, alias
// generation, manual aliases, and per-service slug resolution.
func buildTeam(mt MasterTeam, matchers map[string]*matcher.Matcher, manualAliases []string) *team.Team {
	canonical, mascot := team.ExtractCanonicalName(mt.DisplayName)

	aliasSet := make(map[string]struct{})
	for _, a := range team.GenerateAliases(canonical, mt.DisplayName) {
		aliasSet[a] = struct{}{}
	}
	if mascot != "" {
		aliasSet[team.Fold(canonical+" "+mascot)] = struct{}{}
	}
	for _, a := range manualAliases {
		aliasSet[team.Fold(a)] = struct{}{}
	}

	aliases := make([]string, 0, len(aliasSet))
	for a := range aliasSet {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)

	t := &team.Team{
		ID:            mt.ID,
		CanonicalName: canonical,
		DisplayName:   mt.DisplayName,
		Mascot:        mascot,
		Aliases:       aliases,
		Services:      make(map[string]string, len(matchers)),
	}

	for _, service := range team.AllServices {
		m, ok := matchers[service]
		if !ok {
			continue
		}
		slug, found := m.Find(canonical, aliases...)
		if !found {
			// Display-name fallback runs at the lenient threshold.
			slug, found = m.FindWithThreshold(matcher.ThresholdLenient, mt.DisplayName, aliases...)
		}
		if !found && identityServices[service] {
			slug, found = canonical, true
		}
		if found {
			t.Services[service] = slug
		}
	}

	return t
}
