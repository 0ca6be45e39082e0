// Package profile builds blended team stat profiles from raw season and
// recent-form statistics.
package profile

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/models"
)

// Builder blends a team's full-season and last-10-games stat lines into the
// final weighted line used by the simulator. The blend is linear with a
// single recency weight shared across every field:
//
//	final = season*(1-w) + last10*w
type Builder struct {
	log *logrus.Entry
}

// NewBuilder creates a profile builder.
func NewBuilder(baseLogger *logrus.Logger) *Builder {
	return &Builder{
		log: baseLogger.WithField("component", "profile"),
	}
}

// Build validates the inputs and returns a complete TeamStatProfile with the
// FinalWeighted section computed. A nil season or last-10 section is a
// MissingDataError; a recency weight outside [0,1] is a ConfigurationError.
// Missing sections are never substituted with defaults.
func (b *Builder) Build(teamName string, season, lastTen *models.StatLine, recencyWeight float64) (*models.TeamStatProfile, error) {
	if season == nil {
		return nil, models.NewMissingDataError(teamName, "season")
	}
	if lastTen == nil {
		return nil, models.NewMissingDataError(teamName, "last_10")
	}
	if recencyWeight < 0 || recencyWeight > 1 {
		return nil, models.NewConfigurationError("recency_weight", "must be in [0,1]")
	}
	if season.Pace <= 0 || season.OffensiveRating <= 0 || season.DefensiveRating <= 0 {
		return nil, models.NewMissingDataError(teamName, "season")
	}
	if lastTen.Pace <= 0 || lastTen.OffensiveRating <= 0 || lastTen.DefensiveRating <= 0 {
		return nil, models.NewMissingDataError(teamName, "last_10")
	}

	p := &models.TeamStatProfile{
		TeamName:      teamName,
		Season:        *season,
		LastTen:       *lastTen,
		RecencyWeight: recencyWeight,
	}
	blend(&p.Season, &p.LastTen, &p.FinalWeighted, recencyWeight)

	b.log.WithFields(logrus.Fields{
		"team":           teamName,
		"recency_weight": recencyWeight,
		"final_pace":     p.FinalWeighted.Pace,
		"final_ortg":     p.FinalWeighted.OffensiveRating,
		"final_drtg":     p.FinalWeighted.DefensiveRating,
	}).Debug("Team stat profile built")

	return p, nil
}

// blend writes season*(1-w) + last10*w into dst field by field.
func blend(season, lastTen, dst *models.StatLine, w float64) {
	sf := season.Fields()
	lf := lastTen.Fields()
	df := dst.Fields()
	for i := range df {
		*df[i] = *sf[i]*(1-w) + *lf[i]*w
	}
}
