package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yourusername/courtside-edge/internal/models"
)

// GenerateConsoleReport formats the matchup analysis for terminal output.
func GenerateConsoleReport(r *MatchupReport) string {
	var builder strings.Builder
	mc := r.MonteCarloResults

	builder.WriteString("Matchup Analysis\n")
	builder.WriteString("================\n")
	builder.WriteString(fmt.Sprintf("%s (home) vs %s (away)\n", r.HomeTeam, r.AwayTeam))
	builder.WriteString(fmt.Sprintf("Spread: %+.1f (home)\n", r.Spread))
	builder.WriteString(fmt.Sprintf("Simulations: %d (seed %d)\n\n", mc.GamesSimulated, r.SimulationSettings.Seed))

	builder.WriteString(fmt.Sprintf("Projected Score: %.1f - %.1f\n", mc.AverageScores.Home, mc.AverageScores.Away))
	builder.WriteString(fmt.Sprintf("Average Margin: %+.2f (std %.2f)\n", mc.AverageMargin, mc.MarginStdDev))
	builder.WriteString(fmt.Sprintf("95%% CI: [%+.2f, %+.2f]\n", mc.ConfidenceInterval95.Lower, mc.ConfidenceInterval95.Upper))
	builder.WriteString(fmt.Sprintf("Home Covers: %.2f%%  Away Covers: %.2f%%  Push: %.2f%%\n", mc.HomeCoversPercentage, mc.AwayCoversPercentage, mc.PushPercentage))
	builder.WriteString(fmt.Sprintf("Home Wins: %.2f%%\n", mc.HomeWinPercentage))

	writeSide(&builder, "Home", r.BettingAnalysis.Home)
	writeSide(&builder, "Away", r.BettingAnalysis.Away)

	writeAdjustments(&builder, r.HomeTeam, r.ContextualFactors.ModelAdjustments.Home)
	writeAdjustments(&builder, r.AwayTeam, r.ContextualFactors.ModelAdjustments.Away)

	return builder.String()
}

func writeSide(builder *strings.Builder, label string, analysis *models.BettingAnalysis) {
	if analysis == nil {
		return
	}
	builder.WriteString(fmt.Sprintf("\n%s Side @ %.2f\n", label, analysis.DecimalOdds))
	builder.WriteString(fmt.Sprintf("  Win: %.2f%%  Implied: %.2f%%  Breakeven: %.2f%%\n",
		analysis.WinProbability*100, analysis.ImpliedProbability*100, analysis.BreakevenProbability*100))
	builder.WriteString(fmt.Sprintf("  Edge: %+.2f%%  EV: %+.3f per unit\n", analysis.EdgePercentage, analysis.ExpectedValue))
	builder.WriteString(fmt.Sprintf("  Decision: %s\n", analysis.Decision))
}

func writeAdjustments(builder *strings.Builder, team string, adj models.ContextualAdjustment) {
	builder.WriteString(fmt.Sprintf("\nContext: %s (ORtg %+.2f, DRtg %+.2f, Pace %+.2f)\n",
		team, adj.TotalOffenseDelta(), adj.TotalDefenseDelta(), adj.TotalPaceDelta()))
	for _, factor := range []struct {
		name string
		f    models.FactorAdjustment
	}{
		{"fatigue", adj.Fatigue},
		{"venue", adj.Venue},
		{"hustle", adj.Hustle},
		{"head_to_head", adj.HeadToHead},
	} {
		for _, note := range factor.f.Notes {
			builder.WriteString(fmt.Sprintf("  [%s] %s\n", factor.name, note))
		}
	}
}

// WriteJSONReport writes the indented JSON payload to outputPath, creating
// parent directories as needed.
func WriteJSONReport(r *MatchupReport, outputPath string) error {
	data, err := MarshalJSONReport(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, append(data, '\n'), 0o644)
}
