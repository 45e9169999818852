package lookup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cbbstats/team-registry/internal/logger"
	"github.com/cbbstats/team-registry/internal/storage"
	"github.com/cbbstats/team-registry/internal/team"
)

// Service answers team identity queries against one loaded registry
// snapshot. Read-only after construction.
type Service struct {
	reg *team.Registry
}

// New wraps a registry in a lookup service. A nil or empty registry is
// rejected: an empty lookup service would silently break every
// downstream consumer.
func New(reg *team.Registry) (*Service, error) {
	if reg == nil || len(reg.Teams) == 0 {
		return nil, fmt.Errorf("lookup: registry is empty")
	}
	if len(reg.AliasIndex) == 0 {
		return nil, fmt.Errorf("lookup: registry has no alias index")
	}
	return &Service{reg: reg}, nil
}

// Open loads a registry snapshot from disk and wraps it. This is the
// composition-boundary helper; library code should take a *Service.
func Open(path string) (*Service, error) {
	reg, err := storage.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := New(reg)
	if err != nil {
		return nil, err
	}
	logger.Info("Registry loaded", logger.Fields{
		"path":    path,
		"teams":   reg.TeamCount,
		"aliases": reg.AliasCount,
	})
	return s, nil
}

// TeamID resolves any name variant to a team id. The probe sequence is
// folded name, period-free name, then a state/st swap; a miss returns
// false and logs a warning rather than erroring.
func (s *Service) TeamID(name string) (int, bool) {
	if name == "" {
		return 0, false
	}

	if id, ok := s.reg.AliasIndex[team.Fold(name)]; ok {
		return id, true
	}

	normalized := team.Normalize(name)
	if id, ok := s.reg.AliasIndex[normalized]; ok {
		return id, true
	}

	if strings.Contains(normalized, "state") {
		if id, ok := s.reg.AliasIndex[strings.ReplaceAll(normalized, "state", "st")]; ok {
			return id, true
		}
	} else if strings.Contains(normalized, " st") {
		if id, ok := s.reg.AliasIndex[strings.ReplaceAll(normalized, " st", " state")]; ok {
			return id, true
		}
	}

	logger.Warn("Team not found", logger.Fields{"name": name})
	return 0, false
}

// Team returns the full record for a team id, or nil.
func (s *Service) Team(id int) *team.Team {
	return s.reg.Team(id)
}

// ServiceSlug returns a team's identifier on the given service.
func (s *Service) ServiceSlug(id int, service string) (string, bool) {
	t := s.reg.Team(id)
	if t == nil {
		return "", false
	}
	return t.ServiceSlug(service)
}

// Lookup resolves a name straight to a service slug. This is the
// primary call site for scrapers and report generators.
func (s *Service) Lookup(name, service string) (string, bool) {
	id, ok := s.TeamID(name)
	if !ok {
		return "", false
	}
	return s.ServiceSlug(id, service)
}

// TeamExists reports whether any alias resolves the name.
func (s *Service) TeamExists(name string) bool {
	_, ok := s.TeamID(name)
	return ok
}

// CanonicalName resolves any variant to the canonical team name.
func (s *Service) CanonicalName(name string) (string, bool) {
	id, ok := s.TeamID(name)
	if !ok {
		return "", false
	}
	return s.reg.Team(id).CanonicalName, true
}

// DisplayName resolves any variant to the full display name with mascot.
func (s *Service) DisplayName(name string) (string, bool) {
	id, ok := s.TeamID(name)
	if !ok {
		return "", false
	}
	return s.reg.Team(id).DisplayName, true
}

// Summary is a compact team listing entry.
type Summary struct {
	ID            int    `json:"id"`
	CanonicalName string `json:"canonical_name"`
}

// Teams lists every team in the registry, ordered by id.
func (s *Service) Teams() []Summary {
	out := make([]Summary, 0, len(s.reg.Teams))
	for _, t := range s.reg.Teams {
		out = append(out, Summary{ID: t.ID, CanonicalName: t.CanonicalName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MissingService lists teams that have no identifier for the given
// service, ordered by id.
func (s *Service) MissingService(service string) []Summary {
	var out []Summary
	for _, t := range s.reg.Teams {
		if _, ok := t.ServiceSlug(service); !ok {
			out = append(out, Summary{ID: t.ID, CanonicalName: t.CanonicalName})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
