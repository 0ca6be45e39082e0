// Package betting converts a simulated outcome distribution into a spread
// betting edge and a recommendation.
package betting

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/models"
)

// DecisionPolicy holds the edge thresholds, in percentage points, that
// separate BET from LEAN from NO_BET.
type DecisionPolicy struct {
	BetThreshold  float64
	LeanThreshold float64
}

// DefaultPolicy returns the production thresholds: a 3% edge justifies a
// bet, between 1% and 3% is a lean.
func DefaultPolicy() DecisionPolicy {
	return DecisionPolicy{
		BetThreshold:  3.0,
		LeanThreshold: 1.0,
	}
}

// Validate checks the thresholds are ordered.
func (p DecisionPolicy) Validate() error {
	if p.LeanThreshold < 0 || p.BetThreshold < p.LeanThreshold {
		return models.NewConfigurationError("decision_policy", "requires 0 <= lean <= bet threshold")
	}
	return nil
}

// Analyzer evaluates one side of the spread at the offered decimal odds.
type Analyzer struct {
	policy DecisionPolicy
	log    *logrus.Entry
}

// NewAnalyzer validates the policy and creates an analyzer.
func NewAnalyzer(policy DecisionPolicy, baseLogger *logrus.Logger) (*Analyzer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		policy: policy,
		log:    baseLogger.WithField("component", "betting"),
	}, nil
}

// Analyze combines the simulated cover probability for the requested side
// with the sportsbook line and decimal odds. Decimal odds at or below 1.0
// carry no payout and are rejected as a configuration error.
func (a *Analyzer) Analyze(summary *models.SimulationSummary, side models.BetSide, spread, decimalOdds float64) (*models.BettingAnalysis, error) {
	if summary == nil {
		return nil, models.NewConfigurationError("summary", "must not be nil")
	}
	if decimalOdds <= 1.0 {
		return nil, models.NewConfigurationError("decimal_odds", "must be greater than 1.0")
	}

	var winProb float64
	switch side {
	case models.HomeSide:
		winProb = summary.HomeCoversPercentage / 100.0
	case models.AwaySide:
		winProb = summary.AwayCoversPercentage / 100.0
	default:
		return nil, models.NewConfigurationError("side", "must be home or away")
	}

	pushProb := summary.PushPercentage / 100.0
	lossProb := 1.0 - winProb - pushProb
	if lossProb < 0 {
		lossProb = 0
	}

	implied := 1.0 / decimalOdds
	breakeven := (1.0 - pushProb) / decimalOdds
	edge := (winProb - implied) * 100.0
	expectedValue := winProb*(decimalOdds-1.0) - (1.0 - winProb)

	analysis := &models.BettingAnalysis{
		Side:                 side,
		SportsbookLine:       spread,
		DecimalOdds:          decimalOdds,
		WinProbability:       winProb,
		PushProbability:      pushProb,
		LossProbability:      lossProb,
		ImpliedProbability:   implied,
		BreakevenProbability: breakeven,
		EdgePercentage:       edge,
		ExpectedValue:        expectedValue,
		Decision:             a.decide(edge),
	}

	a.log.WithFields(logrus.Fields{
		"side":     side,
		"line":     spread,
		"odds":     decimalOdds,
		"edge_pct": edge,
		"ev":       expectedValue,
		"decision": analysis.Decision,
	}).Info("Betting analysis produced")

	return analysis, nil
}

// decide maps an edge percentage onto the recommendation label.
func (a *Analyzer) decide(edgePct float64) models.Decision {
	switch {
	case edgePct >= a.policy.BetThreshold:
		return models.DecisionBet
	case edgePct >= a.policy.LeanThreshold:
		return models.DecisionLean
	default:
		return models.DecisionNoBet
	}
}
