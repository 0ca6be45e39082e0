package adjust

import (
	"fmt"
	"math"

	"github.com/yourusername/courtside-edge/internal/models"
)

// venueAdjustment tilts the ratings toward the team's performance at the
// venue it will actually play in. The delta is half the gap between the
// venue split and the season baseline, clamped, so a small home/road sample
// can never swing a rating by more than the configured bound.
func (a *Adjuster) venueAdjustment(season *models.StatLine, splits *models.VenueSplits, isHome bool) models.FactorAdjustment {
	var adj models.FactorAdjustment

	if splits == nil {
		adj.Notes = append(adj.Notes, "Venue splits unavailable, no adjustment applied.")
		return adj
	}

	var perf *models.VenuePerformance
	var where string
	if isHome {
		perf, where = splits.Home, "home"
	} else {
		perf, where = splits.Road, "road"
	}
	if perf == nil || perf.GamesPlayed == 0 {
		adj.Notes = append(adj.Notes, fmt.Sprintf("No %s split recorded, no adjustment applied.", where))
		return adj
	}

	if perf.OffensiveRating > 0 {
		raw := perf.OffensiveRating - season.OffensiveRating
		adj.OffenseDelta = clampDelta(raw*0.5, a.cfg.MaxRatingDelta)
		adj.Notes = append(adj.Notes, fmt.Sprintf(
			"Venue offensive tilt adds %+.2f ORtg (50%% of %+.2f %s gap).",
			adj.OffenseDelta, raw, where))
	}
	if perf.DefensiveRating > 0 {
		raw := perf.DefensiveRating - season.DefensiveRating
		adj.DefenseDelta = clampDelta(raw*0.5, a.cfg.MaxRatingDelta)
		adj.Notes = append(adj.Notes, fmt.Sprintf(
			"Venue defensive tilt adds %+.2f DRtg (50%% of %+.2f %s gap).",
			adj.DefenseDelta, raw, where))
	}

	if math.Abs(adj.OffenseDelta) < 1e-9 && math.Abs(adj.DefenseDelta) < 1e-9 {
		adj.OffenseDelta, adj.DefenseDelta = 0, 0
		adj.Notes = append(adj.Notes, "Venue ratings aligned with season averages, no shift applied.")
	}

	return adj
}
