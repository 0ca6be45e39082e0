// Package adjust converts contextual signals (rest, venue, hustle,
// head-to-head history) into small bounded rating nudges per team.
package adjust

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/models"
)

// Config bounds every sub-factor so contextual noise can never dominate the
// base statistical signal.
type Config struct {
	// MaxRatingDelta caps each sub-factor's offensive/defensive rating
	// delta, in points per 100 possessions.
	MaxRatingDelta float64
	// MaxPaceDelta caps each sub-factor's pace delta.
	MaxPaceDelta float64
	// MinPace floors the adjusted pace after folding in all deltas.
	MinPace float64
}

// DefaultConfig returns the production bounds.
func DefaultConfig() Config {
	return Config{
		MaxRatingDelta: 2.0,
		MaxPaceDelta:   3.5,
		MinPace:        85.0,
	}
}

// Adjuster evaluates the four contextual sub-factors for one team and folds
// the resulting deltas into an AdjustedTeamProfile. Evaluation is fully
// deterministic: the same inputs always produce the same deltas.
type Adjuster struct {
	cfg Config
	log *logrus.Entry
}

// NewAdjuster creates an adjuster with the given bounds.
func NewAdjuster(cfg Config, baseLogger *logrus.Logger) *Adjuster {
	return &Adjuster{
		cfg: cfg,
		log: baseLogger.WithField("component", "adjust"),
	}
}

// Apply evaluates every sub-factor against the blended profile and returns
// the immutable pre-simulation view of the team. A nil context, or any nil
// member of it, degrades to a zero adjustment with an explanatory note.
func (a *Adjuster) Apply(p *models.TeamStatProfile, ctx *models.MatchupContext, isHome bool) *models.AdjustedTeamProfile {
	if ctx == nil {
		ctx = &models.MatchupContext{}
	}

	adj := models.ContextualAdjustment{
		Fatigue:    a.fatigueAdjustment(&p.FinalWeighted, ctx.Rest),
		Venue:      a.venueAdjustment(&p.Season, ctx.Venue, isHome),
		Hustle:     a.hustleAdjustment(&p.FinalWeighted, ctx.Hustle),
		HeadToHead: a.headToHeadAdjustment(ctx.HeadToHead),
	}

	pace := p.FinalWeighted.Pace + adj.TotalPaceDelta()
	if pace < a.cfg.MinPace {
		pace = a.cfg.MinPace
	}

	out := &models.AdjustedTeamProfile{
		TeamName:        p.TeamName,
		Pace:            pace,
		OffensiveRating: p.FinalWeighted.OffensiveRating + adj.TotalOffenseDelta(),
		DefensiveRating: p.FinalWeighted.DefensiveRating + adj.TotalDefenseDelta(),
		Stats:           p.FinalWeighted,
		Adjustment:      adj,
	}

	a.log.WithFields(logrus.Fields{
		"team":          p.TeamName,
		"is_home":       isHome,
		"offense_delta": adj.TotalOffenseDelta(),
		"defense_delta": adj.TotalDefenseDelta(),
		"pace_delta":    adj.TotalPaceDelta(),
	}).Debug("Contextual adjustments applied")

	return out
}

// clampDelta bounds a signed delta to [-limit, limit].
func clampDelta(delta, limit float64) float64 {
	return math.Max(math.Min(delta, limit), -limit)
}
