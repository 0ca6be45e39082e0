package models

// Decision is the bet recommendation derived from the simulated edge.
type Decision string

const (
	// DecisionBet indicates a clear positive-edge opportunity.
	DecisionBet Decision = "BET"
	// DecisionLean indicates marginal positive edge.
	DecisionLean Decision = "LEAN"
	// DecisionNoBet indicates the line is efficient or unfavourable.
	DecisionNoBet Decision = "NO_BET"
)

// BetSide identifies which side of the spread is being evaluated.
type BetSide string

const (
	// HomeSide evaluates the home spread ticket.
	HomeSide BetSide = "home"
	// AwaySide evaluates the away spread ticket.
	AwaySide BetSide = "away"
)

// BettingAnalysis converts the simulated outcome distribution into a
// betting edge for one side of the spread at the supplied decimal odds.
type BettingAnalysis struct {
	Side            BetSide `json:"side"`
	SportsbookLine  float64 `json:"sportsbook_line"`
	DecimalOdds     float64 `json:"decimal_odds"`
	WinProbability  float64 `json:"win_probability"`
	PushProbability float64 `json:"push_probability"`
	LossProbability float64 `json:"loss_probability"`
	// ImpliedProbability is what the offered odds claim: 1/odds.
	ImpliedProbability float64 `json:"implied_probability"`
	// BreakevenProbability accounts for stake-returned push outcomes.
	BreakevenProbability float64 `json:"breakeven_probability"`
	// EdgePercentage is (win probability - implied probability) * 100.
	EdgePercentage float64 `json:"edge_percentage"`
	// ExpectedValue is the mean profit per unit stake.
	ExpectedValue float64  `json:"expected_value"`
	Decision      Decision `json:"decision"`
}
