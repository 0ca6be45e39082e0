package sim

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/yourusername/courtside-edge/internal/models"
)

const (
	// DefaultSimulations is the standard fast analysis run.
	DefaultSimulations = 100000
	// HighPrecisionSimulations is the deep-dive run.
	HighPrecisionSimulations = 1000000
	// defaultBatchSize is the cancellation and progress granularity.
	defaultBatchSize = 10000
)

// ProgressFunc receives incremental completion updates between batches. It
// must be fast: the engine calls it on the simulation goroutine.
type ProgressFunc func(completed, total int)

// RunOptions parametrize one Monte Carlo run.
type RunOptions struct {
	// Simulations is the trial count, N >= 1. Zero selects the default.
	Simulations int
	// Seed makes the run reproducible. Zero seeds from the clock.
	Seed uint64
	// BatchSize controls how often cancellation is checked and progress
	// reported. Cancellation never interrupts a trial mid-draw.
	BatchSize int
	// Progress is optional.
	Progress ProgressFunc
}

// Engine repeats the game simulator N times and reduces the outcomes into a
// SimulationSummary. Each run owns a private RNG stream, so independent
// engines can run concurrently with no cross-talk.
type Engine struct {
	cfg Config
	log *logrus.Entry
}

// NewEngine validates the config and creates an engine.
func NewEngine(cfg Config, baseLogger *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg: cfg,
		log: baseLogger.WithField("component", "engine"),
	}, nil
}

// Run executes the Monte Carlo loop. A failed trial aborts the whole run:
// partial aggregates are never returned. Cancellation is honoured between
// batches only, so a cancelled run returns ctx.Err() rather than a partial
// summary.
func (e *Engine) Run(ctx context.Context, home, away *models.AdjustedTeamProfile, spread float64, opts RunOptions) (*models.SimulationSummary, error) {
	n := opts.Simulations
	if n == 0 {
		n = DefaultSimulations
	}
	if n < 1 {
		return nil, models.NewConfigurationError("simulations", "must be a positive integer")
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	if err := checkProfile(home); err != nil {
		return nil, err
	}
	if err := checkProfile(away); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	simulator := NewGameSimulator(e.cfg, rand.NewSource(seed))

	e.log.WithFields(logrus.Fields{
		"home_team":   home.TeamName,
		"away_team":   away.TeamName,
		"spread":      spread,
		"simulations": n,
		"seed":        seed,
	}).Info("Monte Carlo run started")

	var (
		homeCovers int
		awayCovers int
		pushes     int
		homeWins   int
		homeTotal  int64
		awayTotal  int64

		// Welford accumulators for the margin.
		marginMean float64
		marginM2   float64
	)

	completed := 0
	nextMilestone := 0
	milestones := progressMilestones(n)

	for completed < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := completed + batch
		if end > n {
			end = n
		}
		for trial := completed; trial < end; trial++ {
			game := simulator.Simulate(home, away, spread)
			if game.HomeScore < 0 || game.AwayScore < 0 {
				return nil, models.NewTrialError(trial, "simulated score out of range")
			}

			switch game.Cover {
			case models.Push:
				pushes++
			case models.HomeCovers:
				homeCovers++
			default:
				awayCovers++
			}
			if game.Margin > 0 {
				homeWins++
			}
			homeTotal += int64(game.HomeScore)
			awayTotal += int64(game.AwayScore)

			count := float64(trial + 1)
			delta := float64(game.Margin) - marginMean
			marginMean += delta / count
			marginM2 += delta * (float64(game.Margin) - marginMean)
		}
		completed = end

		if opts.Progress != nil {
			opts.Progress(completed, n)
		}
		for nextMilestone < len(milestones) && completed >= milestones[nextMilestone] {
			e.log.WithFields(logrus.Fields{
				"completed": completed,
				"total":     n,
				"percent":   float64(completed) / float64(n) * 100,
			}).Debug("Simulation progress")
			nextMilestone++
		}
	}

	variance := marginM2 / float64(n)
	stdDev := math.Sqrt(variance)
	stdErr := stdDev / math.Sqrt(float64(n))
	if math.IsNaN(marginMean) || math.IsInf(marginMean, 0) {
		return nil, models.NewTrialError(n-1, "margin aggregate is not finite")
	}

	summary := &models.SimulationSummary{
		GamesSimulated:       n,
		HomeCoversCount:      homeCovers,
		HomeCoversPercentage: pct(homeCovers, n),
		AwayCoversCount:      awayCovers,
		AwayCoversPercentage: pct(awayCovers, n),
		PushCount:            pushes,
		PushPercentage:       pct(pushes, n),
		HomeWinsCount:        homeWins,
		HomeWinPercentage:    pct(homeWins, n),
		AverageScores: models.AverageScores{
			Home: float64(homeTotal) / float64(n),
			Away: float64(awayTotal) / float64(n),
		},
		AverageMargin: marginMean,
		MarginStdDev:  stdDev,
		ConfidenceInterval95: models.ConfidenceInterval{
			Lower: marginMean - 1.96*stdErr,
			Upper: marginMean + 1.96*stdErr,
		},
	}

	e.log.WithFields(logrus.Fields{
		"home_covers_pct": summary.HomeCoversPercentage,
		"push_pct":        summary.PushPercentage,
		"avg_margin":      summary.AverageMargin,
	}).Info("Monte Carlo run completed")

	return summary, nil
}

// checkProfile rejects profiles that would poison every trial.
func checkProfile(p *models.AdjustedTeamProfile) error {
	if p == nil {
		return models.NewConfigurationError("profile", "must not be nil")
	}
	for _, v := range []float64{p.Pace, p.OffensiveRating, p.DefensiveRating} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return models.NewTrialError(0, "profile rating for "+p.TeamName+" is not a positive finite number")
		}
	}
	return nil
}

// progressMilestones returns the trial counts at which progress is logged.
func progressMilestones(n int) []int {
	fractions := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	milestones := make([]int, 0, len(fractions))
	for _, f := range fractions {
		m := int(float64(n) * f)
		if m > 0 && m < n {
			milestones = append(milestones, m)
		}
	}
	return milestones
}

func pct(count, total int) float64 {
	return float64(count) / float64(total) * 100.0
}
