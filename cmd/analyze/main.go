// Package main provides the entry point for the matchup analysis CLI tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/adjust"
	"github.com/yourusername/courtside-edge/internal/betting"
	"github.com/yourusername/courtside-edge/internal/config"
	"github.com/yourusername/courtside-edge/internal/datasource"
	applogger "github.com/yourusername/courtside-edge/internal/logger"
	"github.com/yourusername/courtside-edge/internal/metrics"
	"github.com/yourusername/courtside-edge/internal/models"
	"github.com/yourusername/courtside-edge/internal/profile"
	"github.com/yourusername/courtside-edge/internal/report"
	"github.com/yourusername/courtside-edge/internal/sim"
)

func main() {
	var (
		configPath    = flag.String("config", "config/config.yaml", "Path to config file")
		homeTeam      = flag.String("home", "", "Home team name (required)")
		awayTeam      = flag.String("away", "", "Away team name (required)")
		spread        = flag.Float64("spread", 0, "Home point spread (negative = home favored)")
		homeOdds      = flag.Float64("home-odds", 1.91, "Decimal odds for the home side")
		awayOdds      = flag.Float64("away-odds", 1.91, "Decimal odds for the away side")
		season        = flag.Int("season", time.Now().Year(), "Season year")
		simulations   = flag.Int("simulations", 0, "Number of trials (0 = config default)")
		highPrecision = flag.Bool("high-precision", false, "Run one million trials")
		seed          = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		output        = flag.String("output", "", "Optional path for the JSON report")
	)
	flag.Parse()

	logger := newLogger()
	ctx := context.Background()

	if *homeTeam == "" || *awayTeam == "" {
		logger.Fatal("Both -home and -away are required")
	}

	cfg := loadConfig(ctx, *configPath, logger)
	logger = applogger.NewLogger(cfg.App.LogLevel)

	provider := buildProvider(cfg, logger)
	defer provider.Close()

	trials := resolveTrials(*simulations, *highPrecision, cfg)
	inputs, err := fetchInputs(ctx, provider, *homeTeam, *awayTeam, *season)
	if err != nil {
		logger.Fatalf("Failed to fetch matchup inputs: %v", err)
	}

	matchupReport, err := analyzeMatchup(ctx, cfg, logger, inputs, analysisParams{
		spread:   *spread,
		homeOdds: *homeOdds,
		awayOdds: *awayOdds,
		trials:   trials,
		seed:     *seed,
	})
	if err != nil {
		logger.Fatalf("Analysis failed: %v", err)
	}

	fmt.Print(report.GenerateConsoleReport(matchupReport))

	if *output != "" {
		if err := report.WriteJSONReport(matchupReport, *output); err != nil {
			logger.Fatalf("Failed to write JSON report: %v", err)
		}
		logger.WithField("path", *output).Info("JSON report written")
	}
}

type matchupInputs struct {
	home          *datasource.TeamSections
	away          *datasource.TeamSections
	homeContext   *models.MatchupContext
	awayContext   *models.MatchupContext
	leagueAvgORtg float64
}

type analysisParams struct {
	spread   float64
	homeOdds float64
	awayOdds float64
	trials   int
	seed     int64
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

func loadConfig(ctx context.Context, path string, logger *logrus.Logger) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := config.ApplySecrets(ctx, cfg); err != nil {
		logger.Fatalf("Failed to load secrets: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func buildProvider(cfg *config.Config, logger *logrus.Logger) *datasource.HTTPProvider {
	if cfg.Datasource.BaseURL == "" {
		logger.Fatal("datasource.base_url must be configured for matchup analysis")
	}

	clientCfg := datasource.DefaultHTTPClientConfig()
	clientCfg.Timeout = time.Duration(cfg.Datasource.TimeoutSeconds) * time.Second
	clientCfg.MaxRetries = cfg.Datasource.RetryAttempts
	clientCfg.RateLimit = cfg.Datasource.RateLimitPerSec

	return datasource.NewHTTPProvider(datasource.HTTPProviderConfig{
		BaseURL:    cfg.Datasource.BaseURL,
		APIKey:     cfg.Datasource.APIKey,
		CacheTTL:   time.Duration(cfg.Datasource.CacheTTLSeconds) * time.Second,
		CacheSweep: time.Duration(cfg.Datasource.CacheSweepSeconds) * time.Second,
		Client:     clientCfg,
	}, logger)
}

func resolveTrials(simulations int, highPrecision bool, cfg *config.Config) int {
	if simulations > 0 {
		return simulations
	}
	if highPrecision {
		return sim.HighPrecisionSimulations
	}
	if cfg.Simulation.DefaultSimulations > 0 {
		return cfg.Simulation.DefaultSimulations
	}
	return sim.DefaultSimulations
}

func fetchInputs(ctx context.Context, provider datasource.Provider, homeTeam, awayTeam string, season int) (*matchupInputs, error) {
	home, err := provider.TeamSections(ctx, homeTeam, season)
	if err != nil {
		return nil, err
	}
	away, err := provider.TeamSections(ctx, awayTeam, season)
	if err != nil {
		return nil, err
	}
	homeContext, err := provider.MatchupContext(ctx, homeTeam, awayTeam, season)
	if err != nil {
		return nil, err
	}
	awayContext, err := provider.MatchupContext(ctx, awayTeam, homeTeam, season)
	if err != nil {
		return nil, err
	}
	leagueAvg, err := provider.LeagueAverageORtg(ctx, season)
	if err != nil {
		return nil, err
	}

	return &matchupInputs{
		home:          home,
		away:          away,
		homeContext:   homeContext,
		awayContext:   awayContext,
		leagueAvgORtg: leagueAvg,
	}, nil
}

func analyzeMatchup(ctx context.Context, cfg *config.Config, logger *logrus.Logger, inputs *matchupInputs, params analysisParams) (*report.MatchupReport, error) {
	builder := profile.NewBuilder(logger)
	adjuster := adjust.NewAdjuster(adjust.DefaultConfig(), logger)
	analysisLog := applogger.NewAnalysisLogger(logger)

	recencyWeight := cfg.Simulation.RecencyWeight
	homeProfile, err := builder.Build(inputs.home.TeamName, inputs.home.Season, inputs.home.LastTen, recencyWeight)
	if err != nil {
		return nil, err
	}
	awayProfile, err := builder.Build(inputs.away.TeamName, inputs.away.Season, inputs.away.LastTen, recencyWeight)
	if err != nil {
		return nil, err
	}

	home := adjuster.Apply(homeProfile, inputs.homeContext, true)
	away := adjuster.Apply(awayProfile, inputs.awayContext, false)

	simCfg := sim.DefaultConfig()
	simCfg.LeagueAvgORtg = inputs.leagueAvgORtg
	simCfg.HomeCourtAdvantage = cfg.Simulation.HomeCourtAdvantage

	engine, err := sim.NewEngine(simCfg, logger)
	if err != nil {
		return nil, err
	}

	analysisLog.LogSimulationStart(home.TeamName, away.TeamName, params.spread, params.trials, params.seed)
	started := time.Now()

	summary, err := engine.Run(ctx, home, away, params.spread, sim.RunOptions{
		Simulations: params.trials,
		Seed:        uint64(params.seed),
	})
	if err != nil {
		metrics.RecordSimulationFailure()
		return nil, err
	}

	duration := time.Since(started)
	metrics.RecordSimulationRun(summary.GamesSimulated, duration.Seconds())
	analysisLog.LogSimulationComplete(home.TeamName, away.TeamName,
		summary.HomeCoversPercentage, summary.PushPercentage, summary.AverageMargin,
		float64(duration.Milliseconds()))

	analyzer, err := betting.NewAnalyzer(betting.DecisionPolicy{
		BetThreshold:  cfg.Betting.BetEdgeThreshold,
		LeanThreshold: cfg.Betting.LeanEdgeThreshold,
	}, logger)
	if err != nil {
		return nil, err
	}

	homeAnalysis, err := analyzer.Analyze(summary, models.HomeSide, params.spread, params.homeOdds)
	if err != nil {
		return nil, err
	}
	awayAnalysis, err := analyzer.Analyze(summary, models.AwaySide, -params.spread, params.awayOdds)
	if err != nil {
		return nil, err
	}

	for _, analysis := range []*models.BettingAnalysis{homeAnalysis, awayAnalysis} {
		analysisLog.LogBetDecision(string(analysis.Side), string(analysis.Decision),
			analysis.EdgePercentage, analysis.ExpectedValue,
			analysis.WinProbability, analysis.ImpliedProbability, analysis.DecimalOdds)
		metrics.RecordBetDecision(string(analysis.Decision))
	}

	return &report.MatchupReport{
		HomeTeam:          home.TeamName,
		AwayTeam:          away.TeamName,
		Spread:            params.spread,
		GeneratedAt:       time.Now().UTC(),
		MonteCarloResults: *summary,
		BettingAnalysis: report.SideAnalyses{
			Home: homeAnalysis,
			Away: awayAnalysis,
		},
		ContextualFactors: report.ContextualFactors{
			Home: inputs.homeContext,
			Away: inputs.awayContext,
			ModelAdjustments: report.ModelAdjustments{
				Home: home.Adjustment,
				Away: away.Adjustment,
			},
		},
		SimulationSettings: report.SimulationSettings{
			Simulations:        summary.GamesSimulated,
			Seed:               uint64(params.seed),
			RecencyWeight:      recencyWeight,
			HomeCourtAdvantage: simCfg.HomeCourtAdvantage,
			LeagueAvgORtg:      simCfg.LeagueAvgORtg,
		},
	}, nil
}
