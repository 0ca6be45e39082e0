package backtest

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/adjust"
	"github.com/yourusername/courtside-edge/internal/betting"
	"github.com/yourusername/courtside-edge/internal/datasource"
	"github.com/yourusername/courtside-edge/internal/metrics"
	"github.com/yourusername/courtside-edge/internal/models"
	"github.com/yourusername/courtside-edge/internal/profile"
	"github.com/yourusername/courtside-edge/internal/progress"
	"github.com/yourusername/courtside-edge/internal/repository"
	"github.com/yourusername/courtside-edge/internal/sim"
)

// Result is the full outcome of one backtest run.
type Result struct {
	Run     models.BacktestRun
	Bets    []BetRecord
	Metrics PerformanceMetrics
}

// Runner replays historical seasons through the simulation pipeline.
// Seasons run in parallel on independent engines; results are combined only
// after every season completes.
type Runner struct {
	cfg           Config
	simCfg        sim.Config
	policy        betting.DecisionPolicy
	recencyWeight float64
	baseLog       *logrus.Logger
	log           *logrus.Entry
	repo          repository.BacktestRunRepository
	stream        *progress.Writer
}

// NewRunner validates the configuration and creates a runner.
func NewRunner(cfg Config, simCfg sim.Config, policy betting.DecisionPolicy, recencyWeight float64, baseLogger *logrus.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backtest config: %w", err)
	}
	if err := simCfg.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if recencyWeight < 0 || recencyWeight > 1 {
		return nil, models.NewConfigurationError("recency_weight", "must be in [0,1]")
	}
	return &Runner{
		cfg:           cfg,
		simCfg:        simCfg,
		policy:        policy,
		recencyWeight: recencyWeight,
		baseLog:       baseLogger,
		log:           baseLogger.WithField("component", "backtest"),
	}, nil
}

// WithRepository enables run persistence.
func (r *Runner) WithRepository(repo repository.BacktestRunRepository) *Runner {
	r.repo = repo
	return r
}

// WithProgressStream attaches an NDJSON event stream for consumers
// following a long run.
func (r *Runner) WithProgressStream(stream *progress.Writer) *Runner {
	r.stream = stream
	return r
}

type seasonResult struct {
	season         int
	gamesProcessed int
	bets           []BetRecord
	err            error
}

// Run executes the replay across all configured seasons. On any season
// failure the whole run fails; partial results are never reported as final.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	runID := uuid.New()
	runLog := r.log.WithField("run_id", runID.String())

	runLog.WithFields(logrus.Fields{
		"seasons":     r.cfg.Seasons,
		"simulations": r.cfg.Simulations,
		"min_edge":    r.cfg.MinEdge,
		"seed":        r.cfg.Seed,
	}).Info("Backtest run started")
	r.emitStatus(fmt.Sprintf("backtest %s started: %d seasons", runID, len(r.cfg.Seasons)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	seasonsCh := make(chan int)
	resultsCh := make(chan seasonResult, len(r.cfg.Seasons))

	workers := r.cfg.SeasonWorkers
	if workers > len(r.cfg.Seasons) {
		workers = len(r.cfg.Seasons)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for season := range seasonsCh {
				bets, games, err := r.runSeason(ctx, season)
				resultsCh <- seasonResult{season: season, gamesProcessed: games, bets: bets, err: err}
			}
		}()
	}

	go func() {
		defer close(seasonsCh)
		for _, season := range r.cfg.Seasons {
			select {
			case seasonsCh <- season:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var (
		allBets        []BetRecord
		gamesProcessed int
		completed      int
		runErr         error
	)
	for res := range resultsCh {
		completed++
		if res.err != nil {
			if runErr == nil {
				runErr = fmt.Errorf("season %d failed: %w", res.season, res.err)
				cancel()
			}
			continue
		}
		allBets = append(allBets, res.bets...)
		gamesProcessed += res.gamesProcessed
		percent := float64(completed) / float64(len(r.cfg.Seasons)) * 100
		r.emitProgress(percent)
		r.emitOutput(fmt.Sprintf("season %d complete: %d games, %d bets", res.season, res.gamesProcessed, len(res.bets)))
	}

	if runErr == nil {
		if err := ctx.Err(); err != nil {
			runErr = err
		}
	}
	if runErr != nil {
		runLog.WithError(runErr).Error("Backtest run failed")
		r.emitError(runErr.Error())
		r.emitCompleted(false)
		return nil, runErr
	}

	sort.SliceStable(allBets, func(i, j int) bool {
		if allBets[i].Date != allBets[j].Date {
			return allBets[i].Date < allBets[j].Date
		}
		return allBets[i].GameKey < allBets[j].GameKey
	})

	perf := ComputeMetrics(allBets)
	elapsed := time.Since(started).Seconds()
	totalStaked, _ := perf.TotalStaked.Float64()
	netProfit, _ := perf.NetProfit.Float64()

	run := models.BacktestRun{
		ID:             runID,
		RunDate:        started,
		Seasons:        r.cfg.Seasons,
		Simulations:    r.cfg.Simulations,
		Seed:           r.cfg.Seed,
		MinEdge:        r.cfg.MinEdge,
		GamesProcessed: gamesProcessed,
		BetsPlaced:     perf.BetsPlaced,
		Wins:           perf.Wins,
		Losses:         perf.Losses,
		Pushes:         perf.Pushes,
		HitRate:        perf.HitRate,
		ROI:            perf.ROI,
		EVPerUnit:      perf.EVPerUnit,
		MaxDrawdown:    perf.MaxDrawdown,
		TotalStaked:    totalStaked,
		NetProfit:      netProfit,
		ElapsedSeconds: elapsed,
		CreatedAt:      time.Now(),
	}

	if r.repo != nil {
		if err := r.repo.SaveRun(ctx, &run); err != nil {
			runLog.WithError(err).Error("Failed to persist backtest run")
			r.emitError(err.Error())
			r.emitCompleted(false)
			return nil, err
		}
	}

	metrics.RecordBacktestRun(perf.ROI, perf.HitRate, elapsed, perf.BetsPlaced)
	runLog.WithFields(logrus.Fields{
		"games_processed": gamesProcessed,
		"bets_placed":     perf.BetsPlaced,
		"hit_rate":        perf.HitRate,
		"roi":             perf.ROI,
		"elapsed_seconds": elapsed,
	}).Info("Backtest run completed")
	r.emitProgress(100)
	r.emitCompleted(true)

	return &Result{Run: run, Bets: allBets, Metrics: perf}, nil
}

// runSeason replays one season chronologically, honouring the per-day bet
// cap, and returns the settled bets.
func (r *Runner) runSeason(ctx context.Context, season int) ([]BetRecord, int, error) {
	dataset, err := datasource.LoadSeasonDataset(r.cfg.DatasetDir, season)
	if err != nil {
		return nil, 0, err
	}

	simCfg := r.simCfg
	simCfg.LeagueAvgORtg = dataset.LeagueAvgORtg

	engine, err := sim.NewEngine(simCfg, r.baseLog)
	if err != nil {
		return nil, 0, err
	}
	analyzer, err := betting.NewAnalyzer(r.policy, r.baseLog)
	if err != nil {
		return nil, 0, err
	}
	builder := profile.NewBuilder(r.baseLog)
	adjuster := adjust.NewAdjuster(adjust.DefaultConfig(), r.baseLog)

	var bets []BetRecord
	currentDate := ""
	betsToday := 0

	for i := range dataset.Games {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		game := &dataset.Games[i]

		if game.Date != currentDate {
			currentDate = game.Date
			betsToday = 0
		}

		homeProfile, err := builder.Build(game.HomeTeam, game.Home.Season, game.Home.LastTen, r.recencyWeight)
		if err != nil {
			return nil, 0, err
		}
		awayProfile, err := builder.Build(game.AwayTeam, game.Away.Season, game.Away.LastTen, r.recencyWeight)
		if err != nil {
			return nil, 0, err
		}

		home := adjuster.Apply(homeProfile, game.HomeContext, true)
		away := adjuster.Apply(awayProfile, game.AwayContext, false)

		gameKey := fmt.Sprintf("%s:%s:%s", game.Date, game.HomeTeam, game.AwayTeam)
		summary, err := engine.Run(ctx, home, away, game.Spread, sim.RunOptions{
			Simulations: r.cfg.Simulations,
			Seed:        gameSeed(r.cfg.Seed, gameKey),
		})
		if err != nil {
			return nil, 0, err
		}

		homeAnalysis, err := analyzer.Analyze(summary, models.HomeSide, game.Spread, game.HomeOdds)
		if err != nil {
			return nil, 0, err
		}
		awayAnalysis, err := analyzer.Analyze(summary, models.AwaySide, -game.Spread, game.AwayOdds)
		if err != nil {
			return nil, 0, err
		}

		best := homeAnalysis
		if awayAnalysis.EdgePercentage > homeAnalysis.EdgePercentage {
			best = awayAnalysis
		}
		if best.EdgePercentage < r.cfg.MinEdge || betsToday >= r.cfg.MaxBetsPerDay {
			continue
		}
		betsToday++

		stake := decimal.NewFromFloat(r.cfg.UnitStake)
		result, profit := settle(best.Side, game.Spread, game.ActualMargin(), best.DecimalOdds, stake)
		bets = append(bets, BetRecord{
			Season:   season,
			Date:     game.Date,
			GameKey:  gameKey,
			Side:     best.Side,
			Line:     best.SportsbookLine,
			Odds:     best.DecimalOdds,
			EdgePct:  best.EdgePercentage,
			EV:       best.ExpectedValue,
			Stake:    stake,
			Result:   result,
			Profit:   profit,
			WinProb:  best.WinProbability,
			PushProb: best.PushProbability,
		})
	}

	return bets, len(dataset.Games), nil
}

// settle resolves a spread bet against the actual final margin. The spread
// is always the home line; the home side wins when the margin beats its
// negation, the away side when it falls short.
func settle(side models.BetSide, spread float64, actualMargin int, odds float64, stake decimal.Decimal) (BetResult, decimal.Decimal) {
	margin := float64(actualMargin)
	target := -spread

	if math.Abs(margin-target) <= 1e-9 {
		return BetPush, decimal.Zero
	}
	homeWon := margin > target
	if (side == models.HomeSide && homeWon) || (side == models.AwaySide && !homeWon) {
		payout := decimal.NewFromFloat(odds).Sub(decimal.NewFromInt(1))
		return BetWin, stake.Mul(payout)
	}
	return BetLoss, stake.Neg()
}

// gameSeed derives the per-game RNG seed. Hashing the game key keeps the
// seed independent of season scheduling order, so parallel replays are
// reproducible bet for bet.
func gameSeed(baseSeed int64, gameKey string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(gameKey))
	seed := h.Sum64() ^ uint64(baseSeed)
	if seed == 0 {
		seed = 1
	}
	return seed
}

func (r *Runner) emitStatus(msg string) {
	if r.stream != nil {
		_ = r.stream.Status(msg)
	}
}

func (r *Runner) emitOutput(msg string) {
	if r.stream != nil {
		_ = r.stream.Output(msg)
	}
}

func (r *Runner) emitProgress(percent float64) {
	if r.stream != nil {
		_ = r.stream.Progress(percent)
	}
}

func (r *Runner) emitError(msg string) {
	if r.stream != nil {
		_ = r.stream.Error(msg)
	}
}

func (r *Runner) emitCompleted(success bool) {
	if r.stream != nil {
		_ = r.stream.Completed(success)
	}
}
