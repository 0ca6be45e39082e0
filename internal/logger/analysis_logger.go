// Package logger provides analysis-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides dedicated logging for matchup analysis operations.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogSimulationStart logs the start of a simulation run.
func (al *AnalysisLogger) LogSimulationStart(homeTeam, awayTeam string, spread float64, simulations int, seed int64) {
	al.WithFields(logrus.Fields{
		"home_team":   homeTeam,
		"away_team":   awayTeam,
		"spread":      spread,
		"simulations": simulations,
		"seed":        seed,
	}).Info("Simulation run started")
}

// LogSimulationComplete logs simulation completion with headline results.
func (al *AnalysisLogger) LogSimulationComplete(homeTeam, awayTeam string, homeCoverPct, pushPct, avgMargin float64, durationMs float64) {
	al.WithFields(logrus.Fields{
		"home_team":      homeTeam,
		"away_team":      awayTeam,
		"home_cover_pct": homeCoverPct,
		"push_pct":       pushPct,
		"avg_margin":     avgMargin,
		"duration_ms":    durationMs,
	}).Info("Simulation run completed")
}

// LogBetDecision logs a betting recommendation.
func (al *AnalysisLogger) LogBetDecision(side, decision string, edgePct, expectedValue, winProbability, impliedProbability, odds float64) {
	al.WithFields(logrus.Fields{
		"side":                side,
		"decision":            decision,
		"edge_pct":            edgePct,
		"expected_value":      expectedValue,
		"win_probability":     winProbability,
		"implied_probability": impliedProbability,
		"odds":                odds,
	}).Info("Betting decision made")
}

// LogAdjustment logs an applied contextual adjustment.
func (al *AnalysisLogger) LogAdjustment(team, factor string, offenseDelta, defenseDelta, paceDelta float64, notes []string) {
	al.WithFields(logrus.Fields{
		"team":          team,
		"factor":        factor,
		"offense_delta": offenseDelta,
		"defense_delta": defenseDelta,
		"pace_delta":    paceDelta,
		"notes":         notes,
	}).Debug("Contextual adjustment applied")
}
