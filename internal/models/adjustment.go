package models

// FactorAdjustment is the outcome of evaluating one contextual sub-factor:
// small signed deltas applied to the effective ratings, plus the notes that
// justify them. Missing input data produces an "unavailable" note with zero
// deltas rather than an error.
type FactorAdjustment struct {
	// Rating deltas in points per 100 possessions. Positive OffenseDelta
	// helps the team; positive DefenseDelta hurts it (more points allowed).
	OffenseDelta float64 `json:"offense_delta"`
	DefenseDelta float64 `json:"defense_delta"`
	PaceDelta    float64 `json:"pace_delta"`

	Notes []string `json:"notes"`
}

// Applied reports whether the sub-factor produced any non-zero delta.
func (f FactorAdjustment) Applied() bool {
	return f.OffenseDelta != 0 || f.DefenseDelta != 0 || f.PaceDelta != 0
}

// ContextualAdjustment collects the four independent sub-adjustments for a
// team. Each one is an advisory nudge bounded to a small magnitude so that
// context never dominates the base statistical signal.
type ContextualAdjustment struct {
	Fatigue    FactorAdjustment `json:"fatigue"`
	Venue      FactorAdjustment `json:"venue"`
	Hustle     FactorAdjustment `json:"hustle"`
	HeadToHead FactorAdjustment `json:"head_to_head"`
}

// TotalOffenseDelta sums the offensive rating deltas across sub-factors.
func (c ContextualAdjustment) TotalOffenseDelta() float64 {
	return c.Fatigue.OffenseDelta + c.Venue.OffenseDelta + c.Hustle.OffenseDelta + c.HeadToHead.OffenseDelta
}

// TotalDefenseDelta sums the defensive rating deltas across sub-factors.
func (c ContextualAdjustment) TotalDefenseDelta() float64 {
	return c.Fatigue.DefenseDelta + c.Venue.DefenseDelta + c.Hustle.DefenseDelta + c.HeadToHead.DefenseDelta
}

// TotalPaceDelta sums the pace deltas across sub-factors.
func (c ContextualAdjustment) TotalPaceDelta() float64 {
	return c.Fatigue.PaceDelta + c.Venue.PaceDelta + c.Hustle.PaceDelta + c.HeadToHead.PaceDelta
}
