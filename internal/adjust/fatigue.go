package adjust

import (
	"fmt"

	"github.com/yourusername/courtside-edge/internal/models"
)

// fatigueAdjustment maps the upcoming rest window onto rating and pace
// deltas. Back-to-backs are penalized, extended rest is rewarded, and the
// standard two-or-three-day window is close to neutral. Deltas are derived
// as small percentages of the blended baseline and then clamped.
func (a *Adjuster) fatigueAdjustment(base *models.StatLine, rest *models.RestProfile) models.FactorAdjustment {
	var adj models.FactorAdjustment

	if rest == nil {
		adj.Notes = append(adj.Notes, "Rest profile unavailable, no fatigue adjustment applied.")
		return adj
	}
	if rest.RestDaysUntilNextGame == nil {
		adj.Notes = append(adj.Notes, "Upcoming game date unavailable, skipping fatigue adjustment.")
		return adj
	}

	restDays := *rest.RestDaysUntilNextGame
	switch {
	case restDays <= 1:
		adj.PaceDelta = clampDelta(-0.03*base.Pace, a.cfg.MaxPaceDelta)
		adj.OffenseDelta = clampDelta(-0.02*base.OffensiveRating, a.cfg.MaxRatingDelta)
		adj.DefenseDelta = clampDelta(0.015*base.DefensiveRating, a.cfg.MaxRatingDelta)
		adj.Notes = append(adj.Notes, fmt.Sprintf(
			"Back-to-back fatigue penalty: %.2f pace, %.2f ORtg, +%.2f DRtg.",
			adj.PaceDelta, adj.OffenseDelta, adj.DefenseDelta))
	case restDays == 2:
		adj.PaceDelta = clampDelta(-0.01*base.Pace, a.cfg.MaxPaceDelta)
		adj.OffenseDelta = clampDelta(-0.01*base.OffensiveRating, a.cfg.MaxRatingDelta)
		adj.Notes = append(adj.Notes, fmt.Sprintf(
			"Two days rest, slight normalization: %.2f pace, %.2f ORtg.",
			adj.PaceDelta, adj.OffenseDelta))
	case restDays >= 4:
		adj.PaceDelta = clampDelta(0.01*base.Pace, a.cfg.MaxPaceDelta)
		adj.OffenseDelta = clampDelta(0.015*base.OffensiveRating, a.cfg.MaxRatingDelta)
		adj.DefenseDelta = clampDelta(-0.015*base.DefensiveRating, a.cfg.MaxRatingDelta)
		adj.Notes = append(adj.Notes, fmt.Sprintf(
			"Extended rest boost: +%.2f pace, +%.2f ORtg, %.2f DRtg.",
			adj.PaceDelta, adj.OffenseDelta, adj.DefenseDelta))
	default:
		adj.Notes = append(adj.Notes, "Standard rest window, no fatigue adjustment required.")
	}

	return adj
}
