package adjust

import (
	"fmt"
	"math"

	"github.com/yourusername/courtside-edge/internal/models"
)

// headToHeadAdjustment nudges the offensive rating by a tenth of the
// historical average margin against this opponent, capped at +-1.5 points.
// Balanced histories inside a small threshold produce no shift.
func (a *Adjuster) headToHeadAdjustment(h2h *models.HeadToHeadProfile) models.FactorAdjustment {
	var adj models.FactorAdjustment

	if h2h == nil {
		adj.Notes = append(adj.Notes, "Head-to-head data unavailable.")
		return adj
	}
	if h2h.TotalGames == 0 {
		adj.Notes = append(adj.Notes, "No recent meetings to inform adjustments.")
		return adj
	}

	marginShift := clampDelta(h2h.AverageMargin*0.1, 1.5)
	if math.Abs(marginShift) < 0.05 {
		adj.Notes = append(adj.Notes, "Historical results balanced, no rating shift applied.")
		return adj
	}

	adj.OffenseDelta = clampDelta(marginShift, a.cfg.MaxRatingDelta)
	adj.Notes = append(adj.Notes, fmt.Sprintf(
		"Head-to-head margin (%+.2f over %d games) nudges ORtg by %+.2f.",
		h2h.AverageMargin, h2h.TotalGames, adj.OffenseDelta))

	return adj
}
