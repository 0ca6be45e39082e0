package datasource

import (
	"context"

	"github.com/yourusername/courtside-edge/internal/models"
)

// TeamSections is the raw per-team payload the profile builder consumes.
type TeamSections struct {
	TeamName string           `json:"team_name"`
	Season   *models.StatLine `json:"season,omitempty"`
	LastTen  *models.StatLine `json:"last_10,omitempty"`
}

// Provider fetches the statistical inputs for one matchup. Implementations
// never substitute defaults for missing sections: absence is returned as-is
// and the profile builder turns it into a MissingDataError.
type Provider interface {
	// TeamSections returns the season and last-10 stat lines for a team.
	TeamSections(ctx context.Context, team string, season int) (*TeamSections, error)
	// MatchupContext returns the optional contextual payloads for a team
	// against a given opponent. Missing sub-profiles come back nil.
	MatchupContext(ctx context.Context, team, opponent string, season int) (*models.MatchupContext, error)
	// LeagueAverageORtg returns the league-wide offensive rating baseline.
	LeagueAverageORtg(ctx context.Context, season int) (float64, error)
}
