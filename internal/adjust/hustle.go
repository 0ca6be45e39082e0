package adjust

import (
	"fmt"
	"math"

	"github.com/yourusername/courtside-edge/internal/models"
)

// hustleAdjustment rewards above-average effort with a small defensive
// improvement. The relative effort differential is clamped to +-20% and
// differentials inside a 2% dead zone are treated as league average.
func (a *Adjuster) hustleAdjustment(base *models.StatLine, hustle *models.HustleProfile) models.FactorAdjustment {
	var adj models.FactorAdjustment

	if hustle == nil {
		adj.Notes = append(adj.Notes, "Hustle profile unavailable, no effort adjustment applied.")
		return adj
	}
	if hustle.LeagueAverageEffort == nil || *hustle.LeagueAverageEffort == 0 {
		adj.Notes = append(adj.Notes, "No league hustle baseline, skipping effort adjustment.")
		return adj
	}
	leagueAvg := *hustle.LeagueAverageEffort
	if math.IsNaN(leagueAvg) || math.IsNaN(hustle.TeamEffortScore) {
		adj.Notes = append(adj.Notes, "Invalid hustle metrics, skipping effort adjustment.")
		return adj
	}

	relative := (hustle.TeamEffortScore - leagueAvg) / leagueAvg
	relative = clampDelta(relative, 0.2)

	if math.Abs(relative) < 0.02 {
		adj.Notes = append(adj.Notes, "Effort score near league average, no adjustment applied.")
		return adj
	}

	// A hustling defense allows fewer points: shift DRtg down by up to 3%.
	defensiveShift := clampDelta(relative*0.5, 0.03)
	adj.DefenseDelta = clampDelta(-defensiveShift*base.DefensiveRating, a.cfg.MaxRatingDelta)
	adj.Notes = append(adj.Notes, fmt.Sprintf(
		"Hustle differential (%+.1f%%) shifts DRtg by %+.2f.",
		relative*100, adj.DefenseDelta))

	return adj
}
