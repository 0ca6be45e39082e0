// Package main provides the entry point for the historical backtest service.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/courtside-edge/internal/backtest"
	"github.com/yourusername/courtside-edge/internal/betting"
	"github.com/yourusername/courtside-edge/internal/config"
	"github.com/yourusername/courtside-edge/internal/database"
	"github.com/yourusername/courtside-edge/internal/health"
	applogger "github.com/yourusername/courtside-edge/internal/logger"
	"github.com/yourusername/courtside-edge/internal/metrics"
	"github.com/yourusername/courtside-edge/internal/progress"
	"github.com/yourusername/courtside-edge/internal/repository"
	"github.com/yourusername/courtside-edge/internal/scheduler"
	"github.com/yourusername/courtside-edge/internal/sim"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

var (
	configFile   string
	seasons      []int
	seed         int64
	minEdge      float64
	simulations  int
	streamEvents bool
	cronOverride string

	logger *logrus.Logger
	cfg    *config.Config
	db     *database.DB
	repo   repository.BacktestRunRepository
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	runCmd.Flags().IntSliceVar(&seasons, "seasons", nil, "Override seasons to replay")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Override base RNG seed")
	runCmd.Flags().Float64Var(&minEdge, "min-edge", -1, "Override minimum edge percentage to place a bet")
	runCmd.Flags().IntVar(&simulations, "simulations", 0, "Override trials per game")
	runCmd.Flags().BoolVar(&streamEvents, "stream", false, "Stream NDJSON progress events to stdout")
	scheduleCmd.Flags().StringVar(&cronOverride, "cron", "", "Override the cron expression from config")
}

var rootCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay historical seasons through the spread analysis engine",
	Long:  `Replay historical NBA seasons through the Monte Carlo spread model and measure how the betting policy would have performed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one backtest and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd.Context())
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run backtests on a recurring cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScheduled(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(runCmd, scheduleCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig(ctx context.Context) error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.ApplySecrets(ctx, cfg); err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	logger = applogger.NewLogger(cfg.App.LogLevel)

	if cfg.Backtest.PersistResults {
		if !cfg.Database.Enabled() {
			return fmt.Errorf("backtest.persist_results requires a configured database")
		}
		var err error
		db, err = database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		repo = repository.NewPostgresBacktestRunRepository(db)
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		go serveMetrics(cfg.Metrics.Address)
	}

	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	logger.WithField("addr", addr).Info("Metrics server starting")
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("Metrics server error")
	}
}

func buildRunner() (*backtest.Runner, error) {
	btCfg := backtest.FromConfig(cfg)
	if len(seasons) > 0 {
		btCfg.Seasons = seasons
	}
	if seed != 0 {
		btCfg.Seed = seed
	}
	if minEdge >= 0 {
		btCfg.MinEdge = minEdge
	}
	if simulations > 0 {
		btCfg.Simulations = simulations
	}

	simCfg := sim.DefaultConfig()
	simCfg.HomeCourtAdvantage = cfg.Simulation.HomeCourtAdvantage
	simCfg.LeagueAvgORtg = cfg.Simulation.LeagueAvgORtg

	policy := betting.DecisionPolicy{
		BetThreshold:  cfg.Betting.BetEdgeThreshold,
		LeanThreshold: cfg.Betting.LeanEdgeThreshold,
	}

	runner, err := backtest.NewRunner(btCfg, simCfg, policy, cfg.Simulation.RecencyWeight, logger)
	if err != nil {
		return nil, err
	}
	if repo != nil {
		runner = runner.WithRepository(repo)
	}
	if streamEvents {
		runner = runner.WithProgressStream(progress.NewWriter(os.Stdout))
	}
	return runner, nil
}

func runOnce(ctx context.Context) error {
	runner, err := buildRunner()
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Backtest %s complete\n", result.Run.ID)
	fmt.Printf("  Games processed: %d\n", result.Run.GamesProcessed)
	fmt.Printf("  Bets placed:     %d (W %d / L %d / P %d)\n",
		result.Metrics.BetsPlaced, result.Metrics.Wins, result.Metrics.Losses, result.Metrics.Pushes)
	fmt.Printf("  Hit rate:        %.2f%%\n", result.Metrics.HitRate*100)
	fmt.Printf("  ROI:             %.2f%%\n", result.Metrics.ROI*100)
	fmt.Printf("  EV per unit:     %.4f\n", result.Metrics.EVPerUnit)
	fmt.Printf("  Net profit:      %s units\n", result.Metrics.NetProfit.StringFixed(2))
	fmt.Printf("  Max drawdown:    %.2f units\n", result.Metrics.MaxDrawdown)
	return nil
}

func runScheduled(ctx context.Context) error {
	cronSpec := cfg.Backtest.Schedule
	if cronOverride != "" {
		cronSpec = cronOverride
	}
	if cronSpec == "" {
		return fmt.Errorf("no cron schedule configured; set backtest.schedule or pass --cron")
	}

	sched := scheduler.NewScheduler(func(jobCtx context.Context) error {
		runner, err := buildRunner()
		if err != nil {
			return err
		}
		_, err = runner.Run(jobCtx)
		return err
	}, logger)

	if err := sched.ScheduleBacktest(cronSpec); err != nil {
		return err
	}

	var healthServer *health.Server
	if cfg.Health.Enabled {
		healthCfg := health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Addr:        cfg.Health.Address,
			DatasetDir:  cfg.Backtest.DatasetDir,
			Logger:      logger,
		}
		if db != nil {
			healthCfg.DB = db
		}
		healthServer = health.NewServer(healthCfg)
		if err := healthServer.Start(ctx); err != nil {
			return err
		}
	}

	if err := sched.Start(); err != nil {
		return err
	}
	if healthServer != nil {
		healthServer.SetReady(true)
	}
	logger.WithField("next_run", sched.GetNextRun()).Info("Backtest scheduler running")

	<-ctx.Done()
	logger.Info("Shutting down")
	return sched.Stop()
}
