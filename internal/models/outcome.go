package models

// CoverResult classifies one simulated game against the spread.
type CoverResult int

const (
	// HomeCovers means the home side beat the spread.
	HomeCovers CoverResult = iota
	// AwayCovers means the away side beat the spread.
	AwayCovers
	// Push means the final margin landed exactly on the line.
	Push
)

// String returns the lower-case name of the cover result.
func (c CoverResult) String() string {
	switch c {
	case HomeCovers:
		return "home_covers"
	case AwayCovers:
		return "away_covers"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// GameOutcome is the result of a single simulated game.
type GameOutcome struct {
	HomeScore int         `json:"home_score"`
	AwayScore int         `json:"away_score"`
	Margin    int         `json:"margin"`
	Cover     CoverResult `json:"cover"`
}

// AverageScores holds the mean simulated score per side.
type AverageScores struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// ConfidenceInterval is a two-sided interval for the mean margin.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// SimulationSummary aggregates the outcome distribution of one Monte Carlo
// run. Invariant: HomeCoversCount + AwayCoversCount + PushCount equals
// GamesSimulated.
type SimulationSummary struct {
	GamesSimulated       int                `json:"games_simulated"`
	HomeCoversCount      int                `json:"home_covers_count"`
	HomeCoversPercentage float64            `json:"home_covers_percentage"`
	AwayCoversCount      int                `json:"away_covers_count"`
	AwayCoversPercentage float64            `json:"away_covers_percentage"`
	PushCount            int                `json:"push_count"`
	PushPercentage       float64            `json:"push_percentage"`
	HomeWinsCount        int                `json:"home_wins_count"`
	HomeWinPercentage    float64            `json:"home_win_percentage"`
	AverageScores        AverageScores      `json:"average_scores"`
	AverageMargin        float64            `json:"average_margin"`
	MarginStdDev         float64            `json:"margin_std_dev"`
	ConfidenceInterval95 ConfidenceInterval `json:"confidence_interval_95"`
}
