package betting

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/courtside-edge/internal/models"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	analyzer, err := NewAnalyzer(DefaultPolicy(), log)
	require.NoError(t, err)
	return analyzer
}

// summaryWithCoverPct builds a summary with the given home cover and push
// percentages; away covers absorb the remainder.
func summaryWithCoverPct(homeCoverPct, pushPct float64) *models.SimulationSummary {
	return &models.SimulationSummary{
		GamesSimulated:       100000,
		HomeCoversPercentage: homeCoverPct,
		AwayCoversPercentage: 100 - homeCoverPct - pushPct,
		PushPercentage:       pushPct,
	}
}

func TestAnalyzeComputesEdgeAndEV(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	// 56% cover probability at 2.0 odds: implied 50%, edge +6, EV +0.12.
	summary := summaryWithCoverPct(56.0, 0)

	analysis, err := analyzer.Analyze(summary, models.HomeSide, -3.5, 2.0)
	require.NoError(t, err)

	assert.InDelta(t, 0.56, analysis.WinProbability, 1e-9)
	assert.InDelta(t, 0.50, analysis.ImpliedProbability, 1e-9)
	assert.InDelta(t, 6.0, analysis.EdgePercentage, 1e-9)
	assert.InDelta(t, 0.12, analysis.ExpectedValue, 1e-9)
	assert.Equal(t, models.DecisionBet, analysis.Decision)
}

func TestAnalyzeDecisionBoundaries(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name     string
		coverPct float64
		want     models.Decision
	}{
		{"edge exactly 3 is a bet", 53.0, models.DecisionBet},
		{"edge just under 3 is a lean", 52.999, models.DecisionLean},
		{"edge exactly 1 is a lean", 51.0, models.DecisionLean},
		{"edge just under 1 is no bet", 50.999, models.DecisionNoBet},
		{"zero edge is no bet", 50.0, models.DecisionNoBet},
		{"negative edge is no bet", 47.0, models.DecisionNoBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Odds of 2.0 make implied probability exactly 50%.
			analysis, err := analyzer.Analyze(summaryWithCoverPct(tt.coverPct, 0), models.HomeSide, -3.0, 2.0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, analysis.Decision)
		})
	}
}

func TestAnalyzeAwaySideUsesAwayCoverProbability(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	summary := summaryWithCoverPct(40.0, 4.0) // away covers 56%

	analysis, err := analyzer.Analyze(summary, models.AwaySide, 3.5, 2.0)
	require.NoError(t, err)

	assert.InDelta(t, 0.56, analysis.WinProbability, 1e-9)
	assert.Equal(t, models.AwaySide, analysis.Side)
	assert.Equal(t, models.DecisionBet, analysis.Decision)
}

func TestAnalyzePushAwareProbabilities(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	summary := summaryWithCoverPct(50.0, 6.0)

	analysis, err := analyzer.Analyze(summary, models.HomeSide, -3.0, 1.91)
	require.NoError(t, err)

	assert.InDelta(t, 0.06, analysis.PushProbability, 1e-9)
	assert.InDelta(t, 0.44, analysis.LossProbability, 1e-9)
	// Breakeven excludes the stake-returned push mass.
	assert.InDelta(t, 0.94/1.91, analysis.BreakevenProbability, 1e-9)
}

func TestAnalyzeRejectsInvalidOdds(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	summary := summaryWithCoverPct(55.0, 0)

	for _, odds := range []float64{1.0, 0.5, 0, -2.0} {
		_, err := analyzer.Analyze(summary, models.HomeSide, -3.5, odds)
		require.Error(t, err)
		var cfgErr *models.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	}
}

func TestNewAnalyzerRejectsDisorderedPolicy(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := NewAnalyzer(DecisionPolicy{BetThreshold: 1, LeanThreshold: 3}, log)
	require.Error(t, err)
}
