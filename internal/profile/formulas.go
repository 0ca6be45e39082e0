package profile

import (
	"github.com/yourusername/courtside-edge/internal/models"
)

// EstimatePossessions derives team possessions from box-score totals using
// the standard estimator: FGA + 0.44*FTA - OREB + TOV.
func EstimatePossessions(fga, fta, oreb, tov float64) (float64, error) {
	possessions := fga + 0.44*fta - oreb + tov
	if possessions <= 0 {
		return 0, models.NewConfigurationError("possessions", "estimate must be positive")
	}
	return possessions, nil
}

// Pace converts possessions over the minutes actually played (total team
// minutes, five players on the floor per game minute) to possessions per 48.
func Pace(possessions, teamMinutes float64) (float64, error) {
	if teamMinutes <= 0 {
		return 0, models.NewConfigurationError("minutes", "must be positive")
	}
	if possessions <= 0 {
		return 0, models.NewConfigurationError("possessions", "must be positive")
	}
	return 48.0 * possessions / (teamMinutes / 5.0), nil
}

// OffensiveRating is points scored per 100 possessions.
func OffensiveRating(points, possessions float64) (float64, error) {
	if possessions <= 0 {
		return 0, models.NewConfigurationError("possessions", "must be positive")
	}
	return 100.0 * points / possessions, nil
}

// DefensiveRating is points allowed per 100 possessions.
func DefensiveRating(pointsAllowed, possessions float64) (float64, error) {
	return OffensiveRating(pointsAllowed, possessions)
}
