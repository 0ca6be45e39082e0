package sim

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testProfile(name string, pace, ortg, drtg float64) *models.AdjustedTeamProfile {
	return &models.AdjustedTeamProfile{
		TeamName:        name,
		Pace:            pace,
		OffensiveRating: ortg,
		DefensiveRating: drtg,
		Stats: models.StatLine{
			Pace:               pace,
			OffensiveRating:    ortg,
			DefensiveRating:    drtg,
			EFGPct:             0.540,
			FTARate:            0.250,
			TOVPct:             0.140,
			OREBPct:            0.280,
			OppEFGPct:          0.540,
			OppFTARate:         0.250,
			OppTOVPct:          0.140,
			OppOREBPct:         0.280,
			PtsOffTurnovers:    15.0,
			PtsSecondChance:    12.0,
			OppPtsOffTurnovers: 15.0,
			OppPtsSecondChance: 12.0,
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestRunDeterministicUnderFixedSeed(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	first, err := engine.Run(context.Background(), home, away, -3.5, RunOptions{Simulations: 5000, Seed: 42})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := engine.Run(context.Background(), home, away, -3.5, RunOptions{Simulations: 5000, Seed: 42})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if *first != *second {
		t.Fatalf("expected identical summaries for identical seeds:\n%+v\n%+v", first, second)
	}
}

func TestRunCountInvariant(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	summary, err := engine.Run(context.Background(), home, away, -3.0, RunOptions{Simulations: 20000, Seed: 7})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	total := summary.HomeCoversCount + summary.AwayCoversCount + summary.PushCount
	if total != summary.GamesSimulated {
		t.Fatalf("cover counts %d do not sum to games simulated %d", total, summary.GamesSimulated)
	}
	if summary.GamesSimulated != 20000 {
		t.Fatalf("expected 20000 games, got %d", summary.GamesSimulated)
	}
	// Integer spread means pushes must occur occasionally.
	if summary.PushCount == 0 {
		t.Fatalf("expected some pushes on an integer spread")
	}
}

func TestRunPickEmIsRoughlyBalanced(t *testing.T) {
	// Mirror-image teams at spread zero with home court advantage removed.
	cfg := DefaultConfig()
	cfg.HomeCourtAdvantage = 0
	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	home := testProfile("Boston Celtics", 100, 112, 112)
	away := testProfile("Miami Heat", 100, 112, 112)

	summary, err := engine.Run(context.Background(), home, away, 0, RunOptions{Simulations: 50000, Seed: 11})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.HomeCoversPercentage < 42 || summary.HomeCoversPercentage > 58 {
		t.Fatalf("pick'em home cover rate %f is not near 50%%", summary.HomeCoversPercentage)
	}
	if math.Abs(summary.AverageMargin) > 2.0 {
		t.Fatalf("pick'em average margin %f should be near zero", summary.AverageMargin)
	}
}

func TestRunStrongFavoriteWinsMore(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 122, 105)
	away := testProfile("Washington Wizards", 100, 105, 118)

	summary, err := engine.Run(context.Background(), home, away, 0, RunOptions{Simulations: 30000, Seed: 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.HomeWinPercentage < 70 {
		t.Fatalf("strong favorite should win most games, got %f%%", summary.HomeWinPercentage)
	}
	if summary.AverageMargin <= 0 {
		t.Fatalf("strong favorite should have positive average margin, got %f", summary.AverageMargin)
	}
}

func TestRunConfidenceIntervalNarrowsWithN(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	small, err := engine.Run(context.Background(), home, away, -3.5, RunOptions{Simulations: 2000, Seed: 5})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	large, err := engine.Run(context.Background(), home, away, -3.5, RunOptions{Simulations: 80000, Seed: 5})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	smallWidth := small.ConfidenceInterval95.Upper - small.ConfidenceInterval95.Lower
	largeWidth := large.ConfidenceInterval95.Upper - large.ConfidenceInterval95.Lower
	if largeWidth >= smallWidth {
		t.Fatalf("confidence interval should narrow with more trials: %f vs %f", smallWidth, largeWidth)
	}
}

func TestRunRejectsInvalidSimulationCount(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	_, err := engine.Run(context.Background(), home, away, -3.5, RunOptions{Simulations: -5})
	if err == nil {
		t.Fatalf("expected error for negative simulation count")
	}
	var cfgErr *models.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T", err)
	}
}

func TestRunRejectsNonFiniteProfile(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)
	away.OffensiveRating = math.NaN()

	_, err := engine.Run(context.Background(), home, away, -3.5, RunOptions{Simulations: 100, Seed: 1})
	if err == nil {
		t.Fatalf("expected error for NaN rating")
	}
	var trialErr *models.TrialError
	if !errors.As(err, &trialErr) {
		t.Fatalf("expected TrialError, got %T", err)
	}
}

func TestRunHonoursCancellationBetweenBatches(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	ctx, cancel := context.WithCancel(context.Background())
	progressCalls := 0
	opts := RunOptions{
		Simulations: 100000,
		Seed:        9,
		BatchSize:   1000,
		Progress: func(completed, total int) {
			progressCalls++
			if completed >= 5000 {
				cancel()
			}
		},
	}

	_, err := engine.Run(ctx, home, away, -3.5, opts)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if progressCalls == 0 {
		t.Fatalf("expected progress callbacks before cancellation")
	}
}

func TestRunReportsProgressToCompletion(t *testing.T) {
	engine := newTestEngine(t)
	home := testProfile("Boston Celtics", 100, 115, 108)
	away := testProfile("Miami Heat", 98, 110, 112)

	var last int
	opts := RunOptions{
		Simulations: 5000,
		Seed:        2,
		BatchSize:   500,
		Progress: func(completed, total int) {
			if completed < last {
				t.Fatalf("progress went backwards: %d after %d", completed, last)
			}
			last = completed
		},
	}

	summary, err := engine.Run(context.Background(), home, away, -3.5, opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if last != summary.GamesSimulated {
		t.Fatalf("final progress %d should equal games simulated %d", last, summary.GamesSimulated)
	}
}
