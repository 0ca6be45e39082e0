package models

// TeamStatProfile carries the three parallel statistical sections for one
// team. Season and LastTen are supplied by the data layer; FinalWeighted is
// computed by the profile builder as the linear blend of the two.
type TeamStatProfile struct {
	TeamName      string   `json:"team_name"`
	Season        StatLine `json:"season"`
	LastTen       StatLine `json:"last_10"`
	FinalWeighted StatLine `json:"final_weighted"`
	// RecencyWeight is the blend weight w used to produce FinalWeighted:
	// final = season*(1-w) + last10*w.
	RecencyWeight float64 `json:"recency_weight"`
}

// AdjustedTeamProfile is the final pre-simulation view of a team: the
// blended stat line with all contextual deltas folded into the effective
// ratings. It is constructed once per matchup and never mutated afterwards.
type AdjustedTeamProfile struct {
	TeamName string `json:"team_name"`

	// Effective values after contextual adjustment.
	Pace            float64 `json:"pace"`
	OffensiveRating float64 `json:"offensive_rating"`
	DefensiveRating float64 `json:"defensive_rating"`

	// Blended Four Factors and scoring splits, unchanged by adjustment.
	Stats StatLine `json:"stats"`

	Adjustment ContextualAdjustment `json:"adjustment"`
}
