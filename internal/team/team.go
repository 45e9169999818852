package team

import (
	"strconv"
	"time"
)

// Service identifiers for the external data sources tracked in the
// registry. A team's Services map is keyed by these names.
const (
	ServiceBballnet        = "bballnet"
	ServiceSportsReference = "sports_reference"
	ServiceWikipedia       = "wikipedia_page"
	ServiceBarttorvik      = "barttorvik"
	ServiceKenpom          = "kenpom"
)

// AllServices lists every service name the registry tracks, in the
// order they are reported.
var AllServices = []string{
	ServiceBballnet,
	ServiceSportsReference,
	ServiceWikipedia,
	ServiceBarttorvik,
	ServiceKenpom,
}

// Team represents one NCAA team and every identifier known for it.
type Team struct {
	ID            int               `json:"id"`
	CanonicalName string            `json:"canonical_name"`
	DisplayName   string            `json:"display_name"`
	Mascot        string            `json:"mascot,omitempty"`
	Aliases       []string          `json:"aliases"`
	Services      map[string]string `json:"services"`
}

// ServiceSlug returns the team's identifier on the given service.
// The second return is false when the service is unresolved for this team.
func (t *Team) ServiceSlug(service string) (string, bool) {
	slug, ok := t.Services[service]
	return slug, ok
}

// Registry is an immutable snapshot of all teams and the global alias
// index. It is produced by the registry builder, persisted as JSON, and
// loaded read-only by the lookup service. Nothing mutates a Registry
// after construction, so concurrent readers need no locking.
type Registry struct {
	Version     string           `json:"version"`
	GeneratedAt time.Time        `json:"generated_at"`
	TeamCount   int              `json:"team_count"`
	AliasCount  int              `json:"alias_count"`
	Teams       map[string]*Team `json:"teams"`
	AliasIndex  map[string]int   `json:"alias_index"`
}

// Team returns the team with the given ID, or nil if not present.
func (r *Registry) Team(id int) *Team {
	return r.Teams[strconv.Itoa(id)]
}
