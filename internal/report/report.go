// Package report assembles the structured analysis payload and renders it
// for terminal and file consumers. The payload is always complete: every
// section is present and it is the consumer's job to omit what it does not
// display.
package report

import (
	"encoding/json"
	"time"

	"github.com/yourusername/courtside-edge/internal/models"
)

// SimulationSettings echoes back the knobs a run was produced with so a
// reader can reproduce it.
type SimulationSettings struct {
	Simulations        int     `json:"simulations"`
	Seed               uint64  `json:"seed"`
	RecencyWeight      float64 `json:"recency_weight"`
	HomeCourtAdvantage float64 `json:"home_court_advantage"`
	LeagueAvgORtg      float64 `json:"league_avg_ortg"`
}

// ModelAdjustments is the per-team breakdown of how context moved the
// ratings, with the justification notes, for transparency displays.
type ModelAdjustments struct {
	Home models.ContextualAdjustment `json:"home"`
	Away models.ContextualAdjustment `json:"away"`
}

// ContextualFactors carries the raw context inputs alongside the model's
// interpretation of them.
type ContextualFactors struct {
	Home             *models.MatchupContext `json:"home,omitempty"`
	Away             *models.MatchupContext `json:"away,omitempty"`
	ModelAdjustments ModelAdjustments       `json:"model_adjustments"`
}

// SideAnalyses holds the betting analysis for whichever sides were priced.
type SideAnalyses struct {
	Home *models.BettingAnalysis `json:"home,omitempty"`
	Away *models.BettingAnalysis `json:"away,omitempty"`
}

// MatchupReport is the full analysis output for one game.
type MatchupReport struct {
	HomeTeam           string                   `json:"home_team"`
	AwayTeam           string                   `json:"away_team"`
	Spread             float64                  `json:"spread"`
	GeneratedAt        time.Time                `json:"generated_at"`
	MonteCarloResults  models.SimulationSummary `json:"monte_carlo_results"`
	BettingAnalysis    SideAnalyses             `json:"betting_analysis"`
	ContextualFactors  ContextualFactors        `json:"contextual_factors"`
	SimulationSettings SimulationSettings       `json:"simulation_settings"`
}

// MarshalJSONReport serializes the report with indentation for file output.
func MarshalJSONReport(r *MatchupReport) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
