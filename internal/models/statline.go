package models

// StatLine holds one section of a team's statistical profile: pace,
// efficiency ratings, the Four Factors with their defensive mirrors, and
// miscellaneous scoring splits. The same shape is used for the season
// section, the last-10 section and the blended final section.
type StatLine struct {
	// Possessions per 48 minutes.
	Pace float64 `json:"pace"`
	// Points scored per 100 possessions.
	OffensiveRating float64 `json:"offensive_rating"`
	// Points allowed per 100 possessions.
	DefensiveRating float64 `json:"defensive_rating"`

	// Four Factors, offense.
	EFGPct  float64 `json:"efg_pct"`
	FTARate float64 `json:"fta_rate"`
	TOVPct  float64 `json:"tov_pct"`
	OREBPct float64 `json:"oreb_pct"`

	// Four Factors allowed by the defense.
	OppEFGPct  float64 `json:"opp_efg_pct"`
	OppFTARate float64 `json:"opp_fta_rate"`
	OppTOVPct  float64 `json:"opp_tov_pct"`
	OppOREBPct float64 `json:"opp_oreb_pct"`

	// Miscellaneous scoring splits.
	PtsOffTurnovers    float64 `json:"pts_off_tov"`
	PtsSecondChance    float64 `json:"pts_2nd_chance"`
	OppPtsOffTurnovers float64 `json:"opp_pts_off_tov"`
	OppPtsSecondChance float64 `json:"opp_pts_2nd_chance"`
}

// Fields returns pointers to every numeric field in declaration order so
// callers can apply an operation uniformly across the whole line.
func (s *StatLine) Fields() []*float64 {
	return []*float64{
		&s.Pace, &s.OffensiveRating, &s.DefensiveRating,
		&s.EFGPct, &s.FTARate, &s.TOVPct, &s.OREBPct,
		&s.OppEFGPct, &s.OppFTARate, &s.OppTOVPct, &s.OppOREBPct,
		&s.PtsOffTurnovers, &s.PtsSecondChance,
		&s.OppPtsOffTurnovers, &s.OppPtsSecondChance,
	}
}
