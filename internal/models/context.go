package models

import "time"

// RestProfile describes a team's recent schedule load. All fields come from
// the scheduling collaborator; a nil profile means the data was unavailable.
type RestProfile struct {
	LastGameDate          *time.Time `json:"last_game_date,omitempty"`
	RestDaysBeforeLast    *int       `json:"rest_days_before_last_game,omitempty"`
	RestDaysUntilNextGame *int       `json:"rest_days_until_next_game,omitempty"`
	AverageRestDays       float64    `json:"average_rest_days"`
	BackToBackRate        float64    `json:"back_to_back_rate"`
	FatigueScoreMean      float64    `json:"fatigue_score_mean"`
}

// VenuePerformance holds a team's efficiency ratings in one venue context.
type VenuePerformance struct {
	GamesPlayed     int     `json:"games_played"`
	OffensiveRating float64 `json:"offensive_rating"`
	DefensiveRating float64 `json:"defensive_rating"`
}

// VenueSplits separates a team's home and road performance.
type VenueSplits struct {
	Home *VenuePerformance `json:"home_performance,omitempty"`
	Road *VenuePerformance `json:"away_performance,omitempty"`
}

// HustleProfile summarises effort signals relative to the league.
type HustleProfile struct {
	Deflections         float64  `json:"deflections"`
	ChargesDrawn        float64  `json:"charges_drawn"`
	LooseBallsRecovered float64  `json:"loose_balls_recovered"`
	ScreenAssists       float64  `json:"screen_assists"`
	ContestedShots      float64  `json:"contested_shots"`
	BoxOuts             float64  `json:"box_outs"`
	TeamEffortScore     float64  `json:"team_effort_score"`
	EffortPercentile    *float64 `json:"effort_percentile,omitempty"`
	LeagueAverageEffort *float64 `json:"league_average_effort,omitempty"`
}

// HeadToHeadProfile summarises the recent meetings between the two teams
// of a matchup, from the perspective of the team it is attached to.
type HeadToHeadProfile struct {
	TotalGames       int     `json:"total_games"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinPct           float64 `json:"win_pct"`
	AverageMargin    float64 `json:"avg_margin"`
	AveragePoints    float64 `json:"avg_points_scored"`
	AveragePointsAll float64 `json:"avg_points_allowed"`
	SeasonSpan       []int   `json:"season_span,omitempty"`
}

// MatchupContext bundles the optional contextual inputs for one team. Any
// nil member degrades to a zero adjustment for that sub-factor.
type MatchupContext struct {
	Rest       *RestProfile       `json:"rest,omitempty"`
	Venue      *VenueSplits       `json:"venue,omitempty"`
	Hustle     *HustleProfile     `json:"hustle,omitempty"`
	HeadToHead *HeadToHeadProfile `json:"head_to_head,omitempty"`
}
